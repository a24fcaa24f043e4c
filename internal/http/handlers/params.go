package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/petpal-backend/internal/http/response"
)

// userIDParam parses the :user_id path segment, responding 400 when it is not
// an integer.
func userIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("user_id must be an integer, got %q", raw))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}

func errMissingField(name string) error { return fmt.Errorf("missing field %s", name) }

func errMissingQuery(name string) error { return fmt.Errorf("missing query parameter %s", name) }

// intField is an integer request field that also accepts a numeric string,
// as in {"user_id": "5"}. Integral floats such as 5.0 are accepted too.
type intField int64

func (f *intField) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = intField(v)
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return fmt.Errorf("expected an integer, got %s", string(b))
	}
	*f = intField(v)
	return nil
}

func (f intField) Int64() int64 { return int64(f) }

func (f intField) Int() int {
	if int64(f) > math.MaxInt {
		return math.MaxInt
	}
	if int64(f) < math.MinInt {
		return math.MinInt
	}
	return int(f)
}
