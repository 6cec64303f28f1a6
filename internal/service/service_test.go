package service

import (
	"sync"
	"testing"
	"time"

	"siteadmin/config"
	"siteadmin/internal/repository"
	"siteadmin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type change struct {
	entity string
	action string
	id     uint
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []change
}

func (r *recordingNotifier) Notify(entity, action string, id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, change{entity, action, id})
}

func (r *recordingNotifier) last() change {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return change{}
	}
	return r.events[len(r.events)-1]
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type fixture struct {
	db       *gorm.DB
	changes  *recordingNotifier
	auth     *AuthService
	admins   *repository.AdminRepository
	category *CategoryService
	tag      *TagService
	blog     *BlogService
	product  *ProductService
	contact  *ContactService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.TestDB(t)
	n := &recordingNotifier{}
	admins := repository.NewAdminRepository(db)
	jwtCfg := &config.JWTConfig{Secret: "test-secret", Expiry: 24 * time.Hour, Issuer: "siteadmin"}
	return &fixture{
		db:       db,
		changes:  n,
		admins:   admins,
		auth:     NewAuthService(jwtCfg, admins, n),
		category: NewCategoryService(repository.NewCategoryRepository(db), n),
		tag:      NewTagService(repository.NewTagRepository(db), n),
		blog:     NewBlogService(repository.NewBlogRepository(db), n),
		product:  NewProductService(repository.NewProductRepository(db), n),
		contact:  NewContactService(repository.NewContactRepository(db), n),
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }

func assertKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	assert.NotEmpty(t, Message(err))
}
