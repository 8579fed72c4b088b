package utils

import (
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ParseLeadingInt reads the integer at the start of s the way a browser's
// parseInt does: leading blanks and sign allowed, trailing text ignored.
// It returns nil when s does not start with a number.
func ParseLeadingInt(s string) *int {
	s = strings.TrimSpace(s)
	end := 0
	for i, r := range s {
		if i == 0 && (r == '-' || r == '+') {
			end = 1
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &value
}

// TokenExpired peeks at the exp claim of a JWT bearer token without
// verifying it. Tokens that are not JWTs or carry no exp never expire here.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return now.Unix() >= int64(exp)
}

func BuildListQuery(r *http.Request) *requests.ListQuery {
	query := r.URL.Query()
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultPageLimit
	}

	reportType := strings.TrimSpace(query.Get("reportType"))
	if reportType == constvars.ReportTypeAll {
		reportType = ""
	}

	return &requests.ListQuery{
		Page:       page,
		Limit:      limit,
		Search:     strings.TrimSpace(query.Get("search")),
		ReportType: reportType,
	}
}

func BuildReportHistoryQuery(r *http.Request) *requests.ReportHistoryQuery {
	listQuery := BuildListQuery(r)
	query := r.URL.Query()
	return &requests.ReportHistoryQuery{
		Page:       listQuery.Page,
		Limit:      listQuery.Limit,
		ReportType: listQuery.ReportType,
		Search:     listQuery.Search,
		StartDate:  strings.TrimSpace(query.Get("startDate")),
		EndDate:    strings.TrimSpace(query.Get("endDate")),
	}
}
