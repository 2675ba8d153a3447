package domain

import "context"

const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

// ExportableColumns lists the columns an export may select, in default order.
var ExportableColumns = []string{
	"id",
	"name",
	"date_of_birth",
	"address",
	"town",
	"country",
	"post_code",
	"phone_mobile",
	"phone_home",
	"phone_work",
	"skills",
}

// ExportRequest selects the file format and columns. Empty Columns means all.
type ExportRequest struct {
	Format  string
	Columns []string
}

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportUsecase interface {
	ExportCandidates(ctx context.Context, req ExportRequest) (*ExportFile, error)
}
