package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"mailops-backend/internal/cache"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/metrics"
	"mailops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// ImportFormat is the encoding of an uploaded batch
type ImportFormat string

const (
	ImportFormatCSV  ImportFormat = "csv"
	ImportFormatXLSX ImportFormat = "xlsx"
)

// Per-row import outcomes
const (
	ImportRowCreated = "created"
	ImportRowFailed  = "failed"
)

// DetectImportFormat picks the format from an upload's file name. Plain text bodies have no name.
func DetectImportFormat(filename string) (ImportFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case "", ".csv", ".txt":
		return ImportFormatCSV, nil
	case ".xlsx":
		return ImportFormatXLSX, nil
	}
	return "", apperrors.ErrUnsupportedImportFmt
}

// ImportRowResult is the outcome of one input line
type ImportRowResult struct {
	Line   int    `json:"line"`
	Key    string `json:"key,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ImportReport is the itemized outcome of a batch
type ImportReport struct {
	Total   int               `json:"total"`
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Rows    []ImportRowResult `json:"rows"`
}

type importRow struct {
	line  int
	cells []string
}

// ImportService loads resources in bulk from CSV text or XLSX sheets and exports them back
type ImportService struct {
	builder   *ResourceService
	callers   *CallerResolver
	resources repository.ResourceRepositoryInterface
	views     cache.ViewCache
	maxRows   int
}

// NewImportService creates a new import service
func NewImportService(callers *CallerResolver, resources repository.ResourceRepositoryInterface, views cache.ViewCache, validator *validator.Validate, maxRows int) *ImportService {
	if views == nil {
		views = cache.Noop{}
	}
	return &ImportService{
		builder:   NewResourceService(callers, resources, views, validator),
		callers:   callers,
		resources: resources,
		views:     views,
		maxRows:   maxRows,
	}
}

// Import creates one resource per input row in the caller's team. Columns follow the kind's
// payload column order. Rows fail individually; the batch is never aborted by a bad row.
func (s *ImportService) Import(ctx context.Context, kind models.ResourceKind, format ImportFormat, r io.Reader) (*ImportReport, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireTeamMember(caller); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, apperrors.ErrInvalidResourceKind
	}

	var rows []importRow
	switch format {
	case ImportFormatCSV:
		rows, err = s.readCSV(r)
	case ImportFormatXLSX:
		rows, err = s.readXLSX(r)
	default:
		err = apperrors.ErrUnsupportedImportFmt
	}
	if err != nil {
		return nil, err
	}
	rows = dropHeader(kind, rows)
	if len(rows) == 0 {
		return nil, apperrors.ErrImportEmpty
	}
	if len(rows) > s.maxRows {
		return nil, apperrors.ErrImportTooLarge
	}

	report := &ImportReport{Total: len(rows), Rows: make([]ImportRowResult, len(rows))}
	candidates := make(map[int]models.Resource, len(rows))
	seen := make(map[string]bool, len(rows))
	var keys []string

	columns := kind.PayloadColumns()
	for i, row := range rows {
		report.Rows[i] = ImportRowResult{Line: row.line}
		if len(row.cells) > len(columns) {
			report.Rows[i].Key = firstCell(row.cells)
			report.Rows[i].fail(fmt.Sprintf("expected at most %d columns, got %d", len(columns), len(row.cells)))
			continue
		}

		fields := make(map[string]string, len(columns))
		for c, value := range row.cells {
			fields[columns[c]] = value
		}
		resource, err := s.builder.build(caller, kind, fields)
		if err != nil {
			report.Rows[i].Key = firstCell(row.cells)
			report.Rows[i].fail(err.Error())
			continue
		}

		key := resource.NaturalKey()
		report.Rows[i].Key = key
		if seen[key] {
			report.Rows[i].fail("duplicate in batch")
			continue
		}
		seen[key] = true
		candidates[i] = resource
		keys = append(keys, key)
	}

	taken := make(map[string]bool)
	if len(keys) > 0 {
		existing, err := s.resources.ExistingKeys(ctx, kind, *caller.TeamID, keys)
		if err != nil {
			return nil, apperrors.NewPersistenceError("check existing "+kind.TableName(), err)
		}
		for _, key := range existing {
			taken[models.NormalizeKey(kind, key)] = true
		}
	}

	for i := range report.Rows {
		resource, ok := candidates[i]
		if !ok {
			continue
		}
		if taken[report.Rows[i].Key] {
			report.Rows[i].fail("already exists")
			continue
		}
		if err := s.resources.Create(ctx, resource); err != nil {
			report.Rows[i].fail(apperrors.NewPersistenceError("create "+kind.TableName(), err).Error())
			continue
		}
		report.Rows[i].Status = ImportRowCreated
	}

	for _, row := range report.Rows {
		if row.Status == ImportRowCreated {
			report.Created++
		} else {
			report.Failed++
		}
	}
	if report.Created > 0 {
		invalidateViews(ctx, s.views, *caller.TeamID)
	}

	metrics.ImportRows.WithLabelValues(string(kind), ImportRowCreated).Add(float64(report.Created))
	metrics.ImportRows.WithLabelValues(string(kind), ImportRowFailed).Add(float64(report.Failed))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"kind":    kind,
		"format":  format,
		"total":   report.Total,
		"created": report.Created,
		"failed":  report.Failed,
	}).Info("bulk import finished")

	return report, nil
}

func (r *ImportRowResult) fail(message string) {
	r.Status = ImportRowFailed
	r.Error = message
}

// readCSV reads one row per line; blank lines and # comments are skipped
func (s *ImportService) readCSV(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var rows []importRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError("file", err.Error())
		}
		if isBlank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, importRow{line: line, cells: trimCells(record)})
		if _, err := s.limit(rows); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// readXLSX reads the first sheet of a workbook
func (s *ImportService) readXLSX(r io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "not a readable xlsx workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrImportEmpty
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewValidationError("file", err.Error())
	}

	var rows []importRow
	for i, record := range records {
		if isBlank(record) || strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}
		rows = append(rows, importRow{line: i + 1, cells: trimCells(record)})
	}
	return s.limit(rows)
}

// limit stops reading early, allowing one extra row for a header
func (s *ImportService) limit(rows []importRow) ([]importRow, error) {
	if len(rows) > s.maxRows+1 {
		return nil, apperrors.ErrImportTooLarge
	}
	return rows, nil
}

// dropHeader removes a leading header row, recognised by its first cell naming the first column
func dropHeader(kind models.ResourceKind, rows []importRow) []importRow {
	if len(rows) == 0 {
		return rows
	}
	first := strings.ToLower(strings.ReplaceAll(firstCell(rows[0].cells), " ", "_"))
	if first == kind.PayloadColumns()[0] {
		return rows[1:]
	}
	return rows
}

// Export writes the caller's visible resources of a kind to an xlsx workbook
func (s *ImportService) Export(ctx context.Context, kind models.ResourceKind) ([]byte, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		if err := requireLeader(caller); err != nil {
			return nil, err
		}
	}
	if !kind.IsValid() {
		return nil, apperrors.ErrInvalidResourceKind
	}

	filter := repository.ResourceFilter{}
	if !caller.IsAdmin() {
		filter.TeamID = caller.TeamID
	}
	resources, _, err := s.resources.List(ctx, kind, filter)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list "+kind.TableName(), err)
	}

	data, err := writeWorkbook(kind, resources)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s export: %w", kind, err)
	}
	return data, nil
}

func writeWorkbook(kind models.ResourceKind, resources []models.Resource) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := kind.TableName()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	columns := kind.PayloadColumns()
	headers := append(append([]string{}, columns...), "status", "id", "owner_mailer_id", "team_id", "created_at")
	if err := setRow(f, sheet, 1, stringsToCells(headers)); err != nil {
		return nil, err
	}

	for i, resource := range resources {
		payload := resource.Payload()
		core := resource.GetCore()
		cells := make([]interface{}, 0, len(headers))
		for _, column := range columns {
			cells = append(cells, payload[column])
		}
		cells = append(cells,
			string(core.Status),
			core.ID.String(),
			core.OwnerMailerID.String(),
			core.TeamID.String(),
			core.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func stringsToCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func trimCells(record []string) []string {
	cells := make([]string, len(record))
	for i, cell := range record {
		cells[i] = strings.TrimSpace(cell)
	}
	// Trailing empty cells are padding, not columns
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func firstCell(cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	return cells[0]
}
