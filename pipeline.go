package learngl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// InfoLogLimit bounds captured compiler and linker logs, terminator
// included. At most InfoLogLimit-1 bytes of log text are kept.
const InfoLogLimit = 512

// VertexShaderSource passes positions through to clip space with w=1.
const VertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
   gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// FragmentShaderSource emits a constant opaque orange.
const FragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// PipelineError is a shader compile or program link failure.
type PipelineError struct {
	Stage string // "VERTEX", "FRAGMENT" or "PROGRAM"
	Log   string
}

func (e *PipelineError) Error() string {
	if e.Stage == "PROGRAM" {
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", strings.ToLower(e.Stage), e.Log)
}

// diagnostic returns the line block written to the diagnostics stream.
func (e *PipelineError) diagnostic() string {
	if e.Stage == "PROGRAM" {
		return fmt.Sprintf("ERROR::PROGRAM::LINKING_FAILED\n%s\n", e.Log)
	}
	return fmt.Sprintf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s\n", e.Stage, e.Log)
}

// TruncateInfoLog trims NUL padding and bounds log to InfoLogLimit-1
// bytes. A UTF-8 sequence straddling the limit is dropped whole; bytes
// that cannot belong to one are cut at the limit.
func TruncateInfoLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	limit := InfoLogLimit - 1
	if len(log) <= limit {
		return log
	}
	for cut := limit; cut > limit-utf8.UTFMax && cut > 0; cut-- {
		if utf8.RuneStart(log[cut]) {
			return log[:cut]
		}
	}
	return log[:limit]
}

type pipelineConfig struct {
	diagnostics io.Writer
	strict      bool
	logger      *slog.Logger
}

// PipelineOption configures BuildProgram.
type PipelineOption func(*pipelineConfig)

// WithDiagnostics sets where compile and link logs are written.
// Defaults to os.Stderr.
func WithDiagnostics(w io.Writer) PipelineOption {
	return func(c *pipelineConfig) { c.diagnostics = w }
}

// WithStrictPipeline makes BuildProgram fail on any compile or link error
// instead of logging it and returning the program anyway.
func WithStrictPipeline() PipelineOption {
	return func(c *pipelineConfig) { c.strict = true }
}

// WithPipelineLogger sets the structured logger. Defaults to Logger().
func WithPipelineLogger(l *slog.Logger) PipelineOption {
	return func(c *pipelineConfig) { c.logger = l }
}

// BuildProgram compiles a vertex and a fragment shader and links them.
//
// Compile and link failures are written to the diagnostics stream and
// otherwise ignored: the returned program may be unusable, in which case
// draws with it produce nothing. WithStrictPipeline changes this so no
// program is kept and the failure is returned: a *PipelineError when one
// stage failed, or those errors joined with errors.Join when several did.
// errors.As finds the first failing stage either way.
//
// Both shader objects are deleted once the link has been attempted.
func BuildProgram(ctx *Context, vertexSource, fragmentSource string, opts ...PipelineOption) (*Program, error) {
	cfg := pipelineConfig{
		diagnostics: os.Stderr,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var failures []error
	report := func(e *PipelineError) {
		fmt.Fprint(cfg.diagnostics, e.diagnostic())
		cfg.logger.Debug("shader pipeline failure", "stage", e.Stage)
		failures = append(failures, e)
	}

	vs := ctx.NewShader(VertexShader)
	if ok, log := vs.Compile(vertexSource); !ok {
		report(&PipelineError{Stage: vs.Kind().String(), Log: log})
	}

	fs := ctx.NewShader(FragmentShader)
	if ok, log := fs.Compile(fragmentSource); !ok {
		report(&PipelineError{Stage: fs.Kind().String(), Log: log})
	}

	prog := ctx.NewProgram()
	prog.Attach(vs)
	prog.Attach(fs)
	if ok, log := prog.Link(); !ok {
		report(&PipelineError{Stage: "PROGRAM", Log: log})
	}

	vs.Delete()
	fs.Delete()

	cfg.logger.Debug("shader program built", "program", prog.ID(), "linked", prog.Linked())

	if cfg.strict && len(failures) > 0 {
		prog.Delete()
		if len(failures) == 1 {
			return nil, failures[0]
		}
		return nil, errors.Join(failures...)
	}
	return prog, nil
}
