package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldID          = "id"
	FieldName        = "name"
	FieldRunID       = "run_id"
	FieldRows        = "rows"
	FieldAmountCents = "amount_cents"
	FieldBudgetCents = "budget_cents"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldProject     = "project"
	FieldDate        = "date"
	FieldBackend     = "backend"
	FieldDBPath      = "db_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStorage = "storage"
	ComponentImport  = "import"
	ComponentExport  = "export"
	ComponentReport  = "report"
	ComponentBackend = "backend"
)
