package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"mailops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxImportBytes  = 10 << 20
)

// ImportHandler handles bulk import and spreadsheet export of resources
type ImportHandler struct {
	imports service.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(imports service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// ImportResources handles POST /resources/:kind/import
// @Summary Bulk import resources
// @Description Accepts a multipart "file" (.csv, .txt or .xlsx) or a raw body. Raw xlsx bodies must use the spreadsheet content type; anything else is read as CSV. Each row is reported individually.
// @Tags resources
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param kind path string true "Resource kind"
// @Param file formData file false "CSV or XLSX file"
// @Success 200 {object} service.ImportReport "Per-row results"
// @Failure 400 {object} ErrorResponse "Empty, too large or unreadable import"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /resources/{kind}/import [post]
func (h *ImportHandler) ImportResources(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	var (
		body   io.Reader
		format service.ImportFormat
		err    error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, ferr := c.FormFile("file")
		if ferr != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
			return
		}
		if format, err = service.DetectImportFormat(fileHeader.Filename); err != nil {
			respondError(c, err)
			return
		}
		file, oerr := fileHeader.Open()
		if oerr != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file could not be read"})
			return
		}
		defer file.Close()
		body = file
	} else {
		format = service.ImportFormatCSV
		if c.ContentType() == xlsxContentType {
			format = service.ImportFormatXLSX
		}
		body = c.Request.Body
	}

	report, err := h.imports.Import(c.Request.Context(), kind, format, body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportResources handles GET /resources/:kind/export
// @Summary Export resources as a spreadsheet
// @Description Team leaders export their team, admins every team.
// @Tags resources
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "Resource kind"
// @Success 200 {file} file "Workbook"
// @Failure 403 {object} ErrorResponse "Role not allowed"
// @Security BearerAuth
// @Router /resources/{kind}/export [get]
func (h *ImportHandler) ExportResources(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	data, err := h.imports.Export(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", kind.TableName()+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, data)
}
