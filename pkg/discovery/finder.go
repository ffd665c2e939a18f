package discovery

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/errors"
	"github.com/matzehuels/slngraph/pkg/observability"
)

const (
	DefaultSolutionExt = ".sln"            // Solution file extension
	DefaultProjectExt  = ".csproj"         // Project file extension
	DefaultManifest    = "packages.config" // Package manifest beside a project
)

// Options configures discovery.
type Options struct {
	SolutionExt string               // Solution file extension (default: .sln)
	ProjectExt  string               // Project file extension (default: .csproj)
	Manifest    string               // Package manifest file name (default: packages.config)
	SkipDirs    []string             // Directory names never descended into
	Logger      func(string, ...any) // Debug callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.SolutionExt == "" {
		opts.SolutionExt = DefaultSolutionExt
	}
	if opts.ProjectExt == "" {
		opts.ProjectExt = DefaultProjectExt
	}
	if opts.Manifest == "" {
		opts.Manifest = DefaultManifest
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Validate checks that the configured extensions and manifest name are usable.
func (o Options) Validate() error {
	o = o.WithDefaults()
	if err := errors.ValidateExtension(o.SolutionExt); err != nil {
		return err
	}
	if err := errors.ValidateExtension(o.ProjectExt); err != nil {
		return err
	}
	return errors.ValidateFilename(o.Manifest)
}

// Finder discovers solutions and projects on the local filesystem.
// A Finder is not safe for concurrent use.
type Finder struct {
	opts     Options
	projects map[string]deps.Project // parsed projects by path, for nested solutions
}

// New creates a Finder with the given options.
func New(opts Options) *Finder {
	return &Finder{opts: opts.WithDefaults()}
}

// Find returns one solution per solution file found under root, in lexical
// path order. Solutions and projects are returned fully built; nothing is
// read lazily.
func (f *Finder) Find(ctx context.Context, root string) ([]deps.Solution, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, ioError(err, root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", root)
	}

	f.projects = make(map[string]deps.Project)
	defer func() { f.projects = nil }()

	solutionFiles, err := f.walk(ctx, root, f.opts.SolutionExt)
	if err != nil {
		return nil, err
	}

	solutions := make([]deps.Solution, 0, len(solutionFiles))
	for _, path := range solutionFiles {
		s, err := f.buildSolution(ctx, path)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, s)
	}
	return solutions, nil
}

func (f *Finder) buildSolution(ctx context.Context, path string) (deps.Solution, error) {
	name := baseName(path, f.opts.SolutionExt)
	f.opts.Logger("solution %s (%s)", name, path)
	observability.Files().OnFileParsed(ctx, observability.FileSolution, path, 0, nil)

	projectFiles, err := f.walk(ctx, filepath.Dir(path), f.opts.ProjectExt)
	if err != nil {
		return deps.Solution{}, err
	}

	projects := make([]deps.Project, 0, len(projectFiles))
	for _, pf := range projectFiles {
		p, ok, err := f.buildProject(ctx, pf)
		if err != nil {
			return deps.Solution{}, err
		}
		if ok {
			projects = append(projects, p)
		}
	}
	return deps.Solution{Name: name, Path: path, Projects: projects}, nil
}

// buildProject parses a project file and the manifest beside it.
// It returns ok=false for zero-length stubs.
func (f *Finder) buildProject(ctx context.Context, path string) (deps.Project, bool, error) {
	if p, ok := f.projects[path]; ok {
		return p, true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return deps.Project{}, false, ioError(err, path)
	}
	if info.Size() == 0 {
		f.opts.Logger("skipping empty project file %s", path)
		observability.Files().OnFileSkipped(ctx, observability.FileProject, path)
		return deps.Project{}, false, nil
	}

	ds, err := ParseProjectFile(path)
	observability.Files().OnFileParsed(ctx, observability.FileProject, path, len(ds), err)
	if err != nil {
		return deps.Project{}, false, err
	}

	manifest := filepath.Join(filepath.Dir(path), f.opts.Manifest)
	if _, err := os.Stat(manifest); err == nil {
		pkgs, err := ParseManifestFile(manifest)
		observability.Files().OnFileParsed(ctx, observability.FileManifest, manifest, len(pkgs), err)
		if err != nil {
			return deps.Project{}, false, err
		}
		ds = append(ds, pkgs...)
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return deps.Project{}, false, ioError(err, manifest)
	}

	p := deps.Project{
		Name:         baseName(path, f.opts.ProjectExt),
		Path:         path,
		Dependencies: ds,
	}
	f.opts.Logger("project %s: %d dependencies", p.Name, len(p.Dependencies))
	f.projects[path] = p
	return p, true, nil
}

// walk returns every regular file under dir with extension ext, in lexical order.
func (f *Finder) walk(ctx context.Context, dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return ioError(err, path)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && slices.Contains(f.opts.SkipDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && hasExt(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// hasExt matches ext case-insensitively, since solution trees usually come
// from case-insensitive filesystems.
func hasExt(name, ext string) bool {
	return len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext)
}

func baseName(path, ext string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(ext)]
}

func ioError(err error, path string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return err
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", path)
	}
	return errors.Wrap(errors.ErrCodeIO, err, "%s", path)
}
