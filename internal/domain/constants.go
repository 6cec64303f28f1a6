package domain

const RoleAdmin = "admin"

// Entity kinds, used in change events and audit records.
const (
	EntityAdmin        = "admin"
	EntityCategory     = "category"
	EntityTag          = "tag"
	EntityBlog         = "blog"
	EntityProduct      = "product"
	EntityContactQuery = "contact_query"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// LatestBlogLimit is the size of the latest-posts read.
const LatestBlogLimit = 3
