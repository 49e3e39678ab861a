package helper_util

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxPageSize = 100

func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		return 0, 0, err
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, err
	}
	if limit < 1 || limit > MaxPageSize || offset < 0 {
		return 0, 0, fmt.Errorf("limit must be within 1..%d and offset non-negative", MaxPageSize)
	}
	return limit, offset, nil
}
