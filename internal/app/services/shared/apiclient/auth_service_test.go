package apiclient

import (
	"context"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/dto/requests"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("flat response", func(t *testing.T) {
		var gotPath string
		var gotBody requests.Login
		client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"success":true,"user":{"id":"1","fullName":"Dr. X","role":"doctor"},"token":"tok1"}`))
		})

		session, err := NewAuthService(client).Login(ctx, models.RoleDoctor, &requests.Login{Email: "a@b.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "/api/auth/doctor-login", gotPath)
		assert.Equal(t, "a@b.com", gotBody.Email)
		assert.Equal(t, "tok1", session.Token)
		assert.Equal(t, models.RoleDoctor, session.User.Role)
	})

	t.Run("wrapped response", func(t *testing.T) {
		client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"user":{"id":"2","fullName":"Pat","role":"patient"},"token":"tok2"}}`))
		})

		session, err := NewAuthService(client).Login(ctx, models.RolePatient, &requests.Login{Email: "p@b.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "tok2", session.Token)
		assert.Equal(t, "2", session.User.ID)
	})

	t.Run("response without a token", func(t *testing.T) {
		client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"user":{"id":"2"}}`))
		})

		_, err := NewAuthService(client).Login(ctx, models.RolePatient, &requests.Login{})
		assert.Error(t, err)
	})

	t.Run("unknown role never reaches the backend", func(t *testing.T) {
		called := false
		client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := NewAuthService(client).Login(ctx, models.Role("nurse"), &requests.Login{})
		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestAuthServiceCurrentUser(t *testing.T) {
	client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"9","fullName":"Ada","role":"admin"}}`))
	})

	user, err := NewAuthService(client).CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestReportServiceUpload(t *testing.T) {
	var fields map[string]string
	var fileName, fileBody string
	client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		reader := multipart.NewReader(r.Body, params["boundary"])
		fields = map[string]string{}
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			content, _ := io.ReadAll(part)
			if part.FormName() == "report" {
				fileName = part.FileName()
				fileBody = string(content)
				continue
			}
			fields[part.FormName()] = string(content)
		}
		w.Write([]byte(`{"success":true,"data":{"analysis":{"summary":"ok"}}}`))
	})

	result, err := NewReportService(client).Upload(context.Background(), &requests.UploadReport{
		ReportName:  "Blood panel",
		ReportType:  "CBC",
		ReportDate:  "2024-03-01",
		FileName:    "panel.pdf",
		ContentType: "application/pdf",
		File:        strings.NewReader("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "panel.pdf", fileName)
	assert.Equal(t, "%PDF-1.4", fileBody)
	assert.Equal(t, map[string]string{"reportName": "Blood panel", "reportType": "CBC", "reportDate": "2024-03-01"}, fields)
}

func TestReportServiceDownload(t *testing.T) {
	client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/report/r1/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="blood.pdf"`)
		w.Write([]byte("%PDF"))
	})

	file, err := NewReportService(client).Download(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "blood.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, []byte("%PDF"), file.Content)
}

func TestReportServiceHistoryQuery(t *testing.T) {
	client, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "10", query.Get("limit"))
		assert.Equal(t, "CBC", query.Get("reportType"))
		assert.False(t, query.Has("search"))
		w.Write([]byte(`{"success":true,"data":[{"_id":"r1","reportName":"Blood"}],"pagination":{"page":2,"limit":10,"total":11,"pages":2}}`))
	})

	reports, pagination, err := NewReportService(client).History(context.Background(), &requests.ReportHistoryQuery{Page: 2, Limit: 10, ReportType: "CBC"})

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "r1", reports[0].ID)
	assert.Equal(t, 2, pagination.Pages)
}
