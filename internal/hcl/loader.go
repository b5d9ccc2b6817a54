package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/fsutil"
)

// FileExtension is the extension of descriptor fragments.
const FileExtension = ".hcl"

// Loader is the HCL-specific implementation of the descriptor.Loader interface.
type Loader struct{}

var _ descriptor.Loader = (*Loader)(nil)

// NewLoader creates a new HCL descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every descriptor fragment under paths, parses them and
// merges them into a single record. Blocks that may only appear once must
// appear once across all fragments.
func (l *Loader) Load(ctx context.Context, paths ...string) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, fmt.Errorf("no descriptor paths given")
	}

	files, err := fsutil.FindFilesByExtension(paths, FileExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to find descriptor files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s descriptor files found in %v", FileExtension, paths)
	}
	logger.Debug("Discovered descriptor files.", "files", files)

	parser := hclparse.NewParser()
	parsed := make([]*hcl.File, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, hclFile)
	}

	return l.decode(ctx, parsed, files)
}

// LoadBytes parses a single in-memory descriptor. The filename is only used
// in diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*descriptor.Descriptor, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, []*hcl.File{hclFile}, []string{filename})
}

func (l *Loader) decode(ctx context.Context, files []*hcl.File, names []string) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	body := files[0].Body
	if len(files) > 1 {
		body = hcl.MergeFiles(files)
	}

	desc, diags := translateRoot(ctx, body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode descriptor: %w", diags)
	}
	for _, diag := range diags {
		logger.Warn("Descriptor decoded with warning.", "summary", diag.Summary, "detail", diag.Detail)
	}

	desc.Files = append([]string(nil), names...)

	logger.Debug("HCL loading complete.",
		"application_id", desc.ApplicationID,
		"plugins", len(desc.Plugins),
		"dependencies", len(desc.Dependencies),
	)
	return desc, nil
}
