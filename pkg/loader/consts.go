package loader

const (
	cModePlain        = "plain"
	cModeGZip         = "gzip"
	cErrPathNotExists = "path not exists"
)
