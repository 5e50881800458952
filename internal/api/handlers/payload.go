package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"coaching-roster-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// dataField is the multipart field that may carry the whole JSON payload
const dataField = "data"

// maxPage bounds the page query parameter
const maxPage = 100000

// arrayFields are always decoded as arrays, even with a single form value
var arrayFields = map[string]bool{"athleteIds": true}

// bindPayload decodes the request payload into target. Multipart requests carry
// it either as JSON in the "data" field or as plain form fields; everything
// else is bound as a JSON body.
func bindPayload(c *gin.Context, target interface{}) error {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			return nil
		}
		return c.ShouldBindJSON(target)
	}

	if c.Request.MultipartForm == nil {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			return fmt.Errorf("invalid multipart form: %w", err)
		}
	}
	values := c.Request.MultipartForm.Value

	if raw := values[dataField]; len(raw) > 0 && strings.TrimSpace(raw[0]) != "" {
		if err := json.Unmarshal([]byte(raw[0]), target); err != nil {
			return fmt.Errorf("invalid JSON in field '%s': %w", dataField, err)
		}
		return nil
	}

	body, err := json.Marshal(formToJSON(values))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("invalid form fields: %w", err)
	}
	return nil
}

// formToJSON turns form values into a JSON-shaped map. Repeated keys and keys
// ending in "[]" become arrays; values that already look like JSON arrays or
// objects, booleans and numbers keep their type.
func formToJSON(values map[string][]string) map[string]interface{} {
	out := make(map[string]interface{}, len(values))
	for key, vals := range values {
		if key == dataField {
			continue
		}
		if strings.HasSuffix(key, "[]") {
			out[strings.TrimSuffix(key, "[]")] = nonEmpty(vals)
			continue
		}
		if len(vals) > 1 || (arrayFields[key] && !looksLikeJSON(vals[0])) {
			out[key] = nonEmpty(vals)
			continue
		}
		out[key] = formScalar(vals[0])
	}
	return out
}

func formScalar(v string) interface{} {
	trimmed := strings.TrimSpace(v)
	if looksLikeJSON(trimmed) {
		var decoded interface{}
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return decoded
		}
	}
	switch trimmed {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}

func nonEmpty(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func looksLikeJSON(v string) bool {
	v = strings.TrimSpace(v)
	return strings.HasPrefix(v, "[") || strings.HasPrefix(v, "{")
}

// pathUUID parses a uuid path parameter, writing 400 when it is malformed
func pathUUID(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// queryPage reads the page query parameter, defaulting to 1
func queryPage(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return 0, false
	}
	if page > maxPage {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("page must not exceed %d", maxPage)})
		return 0, false
	}
	return page, true
}

// currentUserID returns the authenticated user's id, writing 401 when absent
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}
