package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/common"
	"github.com/Veraticus/sift/internal/extract"
	"github.com/Veraticus/sift/internal/model"
	"github.com/Veraticus/sift/internal/organizer"
	"github.com/gin-gonic/gin"
)

// uploadField is the multipart form field carrying files.
const uploadField = "files"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CategorizeRequest asks for an ad hoc analysis of text.
type CategorizeRequest struct {
	TopN *int   `json:"top_n,omitempty"`
	Text string `json:"text"`
}

// CategorizeResponse is the analysis of a CategorizeRequest.
type CategorizeResponse struct {
	Category model.CategoryName `json:"category"`
	Keywords []string           `json:"keywords"`
	Score    int                `json:"score"`
}

// FileContentResponse carries the start of a file's extracted text.
type FileContentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Size      string `json:"size"`
	Truncated bool   `json:"truncated"`
}

// FileListResponse wraps a file listing.
type FileListResponse struct {
	Files []model.OrganizedFile `json:"files"`
	Total int                   `json:"total"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": classification.Categories()})
}

func (s *Server) categorize(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	analyzer := s.organizer.Analyzer()
	var analysis organizer.Analysis
	switch {
	case req.TopN == nil:
		analysis = analyzer.Analyze(req.Text)
	case *req.TopN < 0:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "top_n must not be negative"})
		return
	default:
		analysis = analyzer.AnalyzeN(req.Text, *req.TopN)
	}

	c.JSON(http.StatusOK, CategorizeResponse{
		Category: analysis.Result.Category,
		Keywords: analysis.Keywords,
		Score:    analysis.Result.Score,
	})
}

func (s *Server) listFiles(c *gin.Context) {
	var category model.CategoryName
	if raw := c.Query("category"); raw != "" {
		name, err := model.ParseCategoryName(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		category = name
	}

	files := organizer.FilterFiles(s.organizer.AllFiles(), category, c.Query("q"))
	c.JSON(http.StatusOK, FileListResponse{Files: files, Total: len(files)})
}

func (s *Server) uploadFiles(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "upload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid upload: %v", err)})
		return
	}

	headers := form.File[uploadField]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: common.ErrNoFiles.Error()})
		return
	}

	uploads := make([]organizer.Upload, 0, len(headers))
	for _, h := range headers {
		upload, err := readUpload(h)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		uploads = append(uploads, upload)
	}

	report, err := s.organizer.AddFiles(c.Request.Context(), uploads, nil)
	if err != nil {
		common.LogError(err, "Upload failed", common.Fields{"files": len(uploads)})
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if report.Added == nil {
		report.Added = []model.OrganizedFile{}
	}
	if report.Failed == nil {
		report.Failed = []organizer.Failure{}
	}

	status := http.StatusCreated
	if len(report.Added) == 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, report)
}

func readUpload(h *multipart.FileHeader) (organizer.Upload, error) {
	f, err := h.Open()
	if err != nil {
		return organizer.Upload{}, fmt.Errorf("failed to open %s: %w", h.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return organizer.Upload{}, fmt.Errorf("failed to read %s: %w", h.Filename, err)
	}

	mimeType := h.Header.Get("Content-Type")
	if mimeType == "application/octet-stream" {
		mimeType = ""
	}

	return organizer.Upload{Name: h.Filename, Type: mimeType, Data: data}, nil
}

func (s *Server) getFile(c *gin.Context) {
	f, err := s.organizer.Get(c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Server) fileContent(c *gin.Context) {
	f, err := s.organizer.Get(c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}

	preview, truncated := f.Preview(model.PreviewLimit)
	c.JSON(http.StatusOK, FileContentResponse{
		ID:        f.ID,
		Name:      f.Name,
		Content:   preview,
		Size:      extract.FormatFileSize(int64(len(f.Content))),
		Truncated: truncated,
	})
}

func (s *Server) removeFile(c *gin.Context) {
	if err := s.organizer.Remove(c.Param("id")); err != nil {
		writeLookupError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listFolders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"folders": s.organizer.Folders()})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.organizer.Stats())
}

func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrFileNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
