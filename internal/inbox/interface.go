package inbox

import "context"

// Processor handles one dropped meeting transcript file end to end:
// decode, summarize, export.
type Processor interface {
	Process(ctx context.Context, filePath string) error
}
