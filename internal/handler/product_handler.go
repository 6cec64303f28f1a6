package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"siteadmin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	svc *service.ProductService
	log *zap.Logger
}

func NewProductHandler(svc *service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

// ProductRequest carries features raw so a non-array value can be told apart from a list.
type ProductRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Tag          string          `json:"tag"`
	Description  string          `json:"description"`
	FeatureTitle *string         `json:"featureTitle"`
	Features     json.RawMessage `json:"features"`
	Image        string          `json:"image"`
}

var (
	errFeaturesNotList = errors.New("features must be an array")
	errFeatureValue    = errors.New("features may only contain strings, numbers or booleans")
)

// parseFeatures returns nil for an absent or null value. Number and boolean
// elements are kept as their literal text, so ["oak", 2] becomes ["oak", "2"].
func parseFeatures(raw json.RawMessage) (*[]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, errFeaturesNotList
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		v, err := featureText(item)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return &list, nil
}

func featureText(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", errFeatureValue
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	return "", errFeatureValue
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	// A non-array value falls back to no features; a bad element is rejected.
	features := []string{}
	parsed, err := parseFeatures(req.Features)
	switch {
	case errors.Is(err, errFeatureValue):
		fail(c, http.StatusBadRequest, err.Error())
		return
	case err == nil && parsed != nil:
		features = *parsed
	}
	in := service.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Tag:         req.Tag,
		Description: req.Description,
		Features:    features,
		Image:       req.Image,
	}
	if req.FeatureTitle != nil {
		in.FeatureTitle = *req.FeatureTitle
	}
	item, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, "product create", err)
		return
	}
	respond(c, http.StatusCreated, "Product created successfully", item)
}

func (h *ProductHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "product list", err)
		return
	}
	respondList(c, "Products fetched successfully", list, len(list))
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "product get", err)
		return
	}
	respond(c, http.StatusOK, "Product fetched successfully", item)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	features, err := parseFeatures(req.Features)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, service.ProductUpdate{
		Name:         req.Name,
		Category:     req.Category,
		Tag:          req.Tag,
		Description:  req.Description,
		Image:        req.Image,
		FeatureTitle: req.FeatureTitle,
		Features:     features,
	})
	if err != nil {
		respondError(c, h.log, "product update", err)
		return
	}
	respond(c, http.StatusOK, "Product updated successfully", item)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, "product delete", err)
		return
	}
	respond(c, http.StatusOK, "Product deleted successfully", nil)
}
