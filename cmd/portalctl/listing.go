package main

import (
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

// bindListQuery adds the page/limit/search flags every listing shares.
func bindListQuery(cmd *cobra.Command, query *requests.ListQuery) {
	cmd.Flags().IntVar(&query.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&query.Limit, "limit", constvars.DefaultPageLimit, "items per page")
	cmd.Flags().StringVar(&query.Search, "search", "", "search text")
}

func paged(data, pagination interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data":       data,
		"pagination": pagination,
	}
}
