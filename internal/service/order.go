package service

import "strings"

var allowedOrderBy = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
	"views":      "views",
	"duration":   "duration",
	"id":         "id",
}

func sanitizeOrderBy(orderBy string) string {
	key := strings.ToLower(strings.TrimSpace(orderBy))
	return allowedOrderBy[key]
}
