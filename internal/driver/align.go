package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"realign/internal/cache"
	"realign/internal/diag"
	"realign/internal/format"
	"realign/internal/lexer"
	"realign/internal/observ"
	"realign/internal/pipeline"
	"realign/internal/source"
	"realign/internal/trace"
)

// AlignOptions controls AlignPaths.
type AlignOptions struct {
	Check          bool // report unaligned files instead of writing them
	Stdout         bool // keep results in memory; nothing is written
	Jobs           int  // <= 0 means GOMAXPROCS
	MaxDiagnostics int
	Format         format.Options
	Registry       *lexer.Registry
	Exclude        func(name string) bool
	Cache          *cache.Disk
	Progress       pipeline.ProgressSink
	Timer          *observ.Timer
}

// AlignResult describes one processed file.
type AlignResult struct {
	Path      string
	FileID    source.FileID
	Tokenizer string
	Changed   bool
	Cached    bool
	Degraded  int
	Output    []byte // без BOM
	Bag       *diag.Bag
	Err       error
}

// Report is the outcome of AlignPaths.
type Report struct {
	Files   *source.FileSet
	Results []AlignResult
}

// HasErrors reports whether any file failed.
func (r *Report) HasErrors() bool {
	for i := range r.Results {
		if r.Results[i].Err != nil || (r.Results[i].Bag != nil && r.Results[i].Bag.HasErrors()) {
			return true
		}
	}
	return false
}

// Unaligned returns the results whose output differs from the input.
func (r *Report) Unaligned() []AlignResult {
	var out []AlignResult
	for _, res := range r.Results {
		if res.Changed {
			out = append(out, res)
		}
	}
	return out
}

// CollectFiles returns the files AlignPaths would process, in its order.
func CollectFiles(ctx context.Context, paths []string, opts AlignOptions) ([]string, error) {
	reg := opts.Registry
	if reg == nil {
		var err error
		if reg, err = lexer.NewRegistry(nil); err != nil {
			return nil, err
		}
	}
	want := func(path string) bool {
		_, ok := reg.Lookup(filepath.Ext(path))
		return ok
	}
	return collectSourceFiles(ctx, paths, want, opts.Exclude)
}

// AlignPaths aligns every source file under paths.
func AlignPaths(ctx context.Context, paths []string, opts AlignOptions) (*Report, error) {
	if opts.Registry == nil {
		reg, err := lexer.NewRegistry(nil)
		if err != nil {
			return nil, err
		}
		opts.Registry = reg
	}
	if err := opts.Format.Validate(); err != nil {
		return nil, err
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	driverSpan := trace.Begin(tracer, trace.ScopeDriver, "align_paths", trace.ParentSpan(ctx))
	defer func() { driverSpan.End("") }()
	ctx = trace.WithParentSpan(ctx, driverSpan.ID())

	files, err := CollectFiles(ctx, paths, opts)
	if err != nil {
		return nil, err
	}
	driverSpan.WithExtra("files", fmt.Sprint(len(files)))

	report := &Report{
		Files:   source.NewFileSet(),
		Results: make([]AlignResult, len(files)),
	}
	for i, path := range files {
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusQueued})
		report.Results[i] = AlignResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}
	}

	// Загрузка последовательно: FileSet не потокобезопасен.
	loadIdx := opts.Timer.Begin("load")
	loadSpan := trace.Begin(tracer, trace.ScopePass, "load", driverSpan.ID())
	for i := range report.Results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := &report.Results[i]
		id, err := report.Files.Load(res.Path)
		if err != nil {
			// файла нет в FileSet, поэтому без диагностики
			res.Err = fmt.Errorf("read %s: %w", res.Path, err)
			pipeline.Emit(opts.Progress, pipeline.Event{File: res.Path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: err})
			continue
		}
		res.FileID = id
		pipeline.Emit(opts.Progress, pipeline.Event{File: res.Path, Stage: pipeline.StageLoad, Status: pipeline.StatusDone})
	}
	loadSpan.End("")
	opts.Timer.End(loadIdx, fmt.Sprintf("%d files", len(files)))

	alignIdx := opts.Timer.Begin("align")
	alignSpan := trace.Begin(tracer, trace.ScopePass, "align", driverSpan.ID())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range report.Results {
		res := &report.Results[i]
		if res.Err != nil {
			continue
		}
		file := report.Files.Get(res.FileID)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			alignOne(gctx, file, nil, res, opts, alignSpan.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		alignSpan.End("canceled")
		return nil, err
	}
	alignSpan.End("")
	opts.Timer.End(alignIdx, "")

	if opts.Check || opts.Stdout {
		return report, nil
	}

	writeIdx := opts.Timer.Begin("write")
	writeSpan := trace.Begin(tracer, trace.ScopePass, "write", driverSpan.ID())
	written := 0
	for i := range report.Results {
		res := &report.Results[i]
		if res.Err != nil || !res.Changed {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		pipeline.Emit(opts.Progress, pipeline.Event{File: res.Path, Stage: pipeline.StageWrite, Status: pipeline.StatusWorking})
		data := res.Output
		if report.Files.Get(res.FileID).Flags&source.FileHadBOM != 0 {
			data = append(append([]byte(nil), source.BOM()...), data...)
		}
		if err := writeFileAtomic(res.Path, data); err != nil {
			res.Err = fmt.Errorf("write %s: %w", res.Path, err)
			res.Bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: res.FileID}, err.Error()))
			pipeline.Emit(opts.Progress, pipeline.Event{File: res.Path, Stage: pipeline.StageWrite, Status: pipeline.StatusError, Err: err})
			continue
		}
		written++
		pipeline.Emit(opts.Progress, pipeline.Event{File: res.Path, Stage: pipeline.StageWrite, Status: pipeline.StatusDone, Elapsed: time.Since(start)})
	}
	writeSpan.End(fmt.Sprintf("%d written", written))
	opts.Timer.End(writeIdx, fmt.Sprintf("%d files", written))
	return report, nil
}

// alignOne runs one formatting pass over file and fills res. A nil tz is
// resolved from the file path.
func alignOne(ctx context.Context, file *source.File, tz lexer.Tokenizer, res *AlignResult, opts AlignOptions, parent uint64) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "align_file", parent).WithExtra("path", res.Path)
	start := time.Now()
	pipeline.Emit(opts.Progress, pipeline.Event{File: res.Path, Stage: pipeline.StageAlign, Status: pipeline.StatusWorking})

	finish := func(status pipeline.Status, err error) {
		span.End(string(status))
		pipeline.Emit(opts.Progress, pipeline.Event{
			File:    res.Path,
			Stage:   pipeline.StageAlign,
			Status:  status,
			Err:     err,
			Elapsed: time.Since(start),
		})
	}

	if tz == nil {
		var err error
		if tz, err = opts.Registry.ForPath(file.Path, file.Content); err != nil {
			res.Err = err
			res.Bag.Add(diag.NewError(diag.IOUnknownLanguage, source.Span{File: file.ID}, err.Error()))
			finish(pipeline.StatusError, err)
			return
		}
	}
	res.Tokenizer = tz.Name()

	lineBreak := opts.Format.LineBreak
	if lineBreak == "" {
		lineBreak = file.LineBreak()
	}
	key := cache.Key(file.Content, tz.Name(), opts.Format.Indentation, lineBreak)
	if entry, ok, cerr := opts.Cache.Get(key); cerr == nil && ok && entry.Tokenizer == tz.Name() {
		res.Cached = true
		res.Changed = entry.Changed
		res.Degraded = entry.Degraded
		if entry.Changed {
			res.Output = entry.Output
		} else {
			res.Output = file.Content
		}
		if res.Changed && opts.Check {
			reportUnaligned(res, file)
		}
		finish(pipeline.StatusSkipped, nil)
		return
	}

	fopts := opts.Format
	fopts.LineBreak = lineBreak
	fopts.Tracer = tracer
	fopts.ParentSpan = span.ID()
	fopts.OnDegraded = func(start, end, runs int) {
		res.Degraded += runs
		sp := source.Span{File: file.ID, Line: uint32(start)} // #nosec G115 -- line index of an in-memory file
		res.Bag.Add(diag.New(diag.SevInfo, diag.AlnDegraded, sp,
			fmt.Sprintf("lines %d-%d differ in shape, %d gaps left unpadded", start+1, end, runs)))
	}
	out, err := format.IndentLines(file.Lines, tz, fopts)
	if err != nil {
		res.Err = err
		res.Bag.Add(lexDiagnostic(file.ID, err))
		finish(pipeline.StatusError, err)
		return
	}
	w := format.NewWriter(lineBreak, len(file.Content)+len(file.Content)/4)
	for _, line := range out {
		w.WriteLine("", line)
	}
	res.Output = w.Bytes()
	res.Changed = !bytes.Equal(res.Output, file.Content)
	if res.Changed && opts.Check {
		reportUnaligned(res, file)
	}

	entry := &cache.Entry{Tokenizer: tz.Name(), Changed: res.Changed, Degraded: res.Degraded}
	if res.Changed {
		entry.Output = res.Output
	}
	if err := opts.Cache.Put(key, entry); err != nil {
		trace.Point(tracer, trace.ScopeFile, "cache.put_failed", span.ID(), err.Error())
	}

	status := pipeline.StatusDone
	if !res.Changed {
		status = pipeline.StatusSkipped
	}
	finish(status, nil)
}

// lexDiagnostic converts a tokenizer failure into a diagnostic for file.
func lexDiagnostic(file source.FileID, err error) diag.Diagnostic {
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		return diag.NewError(diag.LexInfo, source.Span{File: file}, err.Error())
	}
	code := diag.LexUnknownChar
	if lexErr.Code == lexer.UnterminatedString {
		code = diag.LexUnterminatedString
	}
	sp := lexErr.Span
	sp.File = file
	return diag.NewError(code, sp, fmt.Sprintf("%s %q", lexErr.Msg, lexErr.Char))
}

// reportUnaligned adds a check warning pointing at the first line that would change.
func reportUnaligned(res *AlignResult, file *source.File) {
	got, _ := source.SplitLines(string(res.Output))
	line := firstDifference(file.Lines, got)
	sp := source.Span{File: file.ID, Line: uint32(line)} // #nosec G115 -- line index of an in-memory file
	d := diag.New(diag.SevWarning, diag.ChkNotAligned, sp, "file is not aligned")
	if line < len(got) {
		d = d.WithNote(sp, "expected: "+got[line])
	}
	res.Bag.Add(d)
}

func firstDifference(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// AlignSource aligns in-memory content (stdin) as a single virtual file. The
// tokenizer is chosen by lang, or from name when lang is empty. Nothing is
// written and the cache is not consulted.
func AlignSource(ctx context.Context, name string, content []byte, lang string, opts AlignOptions) (*Report, error) {
	if opts.Registry == nil {
		reg, err := lexer.NewRegistry(nil)
		if err != nil {
			return nil, err
		}
		opts.Registry = reg
	}
	if err := opts.Format.Validate(); err != nil {
		return nil, err
	}
	var tz lexer.Tokenizer
	if lang != "" {
		var ok bool
		if tz, ok = opts.Registry.ByName(lang); !ok {
			return nil, fmt.Errorf("unknown language %q", lang)
		}
	}
	opts.Cache = nil

	report := &Report{Files: source.NewFileSet(), Results: make([]AlignResult, 1)}
	res := &report.Results[0]
	res.Path = name
	res.Bag = diag.NewBag(opts.MaxDiagnostics)
	res.FileID = report.Files.AddVirtual(name, content)

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "align_source", trace.ParentSpan(ctx))
	alignOne(ctx, report.Files.Get(res.FileID), tz, res, opts, span.ID())
	span.End("")
	return report, nil
}
