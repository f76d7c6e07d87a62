package wrap

import (
	"cmp"
	"go/types"
	"path"
	"slices"

	"quote-generator/internal/common"
)

// ImportSpec is an import of the generated file.
type ImportSpec struct {
	Alias string // Set when the local name differs from the package name
	Path  string
}

// Imports records the packages referenced by generated code and assigns each
// a unique local name.
type Imports struct {
	self   *types.Package
	byPath map[string]string
	names  map[string]struct{}
	specs  []ImportSpec
}

// NewImports creates an import set for code generated into self. The quote
// runtime package is imported first so that it gets the name quote unless
// self declares that name at package scope. Other package-scope names of self
// are never used as import names.
func NewImports(self *types.Package, quotePath string) *Imports {
	im := &Imports{
		self:   self,
		byPath: make(map[string]string),
		names:  make(map[string]struct{}),
	}

	if self != nil {
		for _, name := range self.Scope().Names() {
			im.names[name] = struct{}{}
		}
	}

	im.Add(quotePath, "quote")

	return im
}

// Add imports path under its package name, or under a numbered variant of
// it when the name is taken. It returns the local name.
func (im *Imports) Add(pkgPath, name string) string {
	if local, ok := im.byPath[pkgPath]; ok {
		return local
	}

	local := common.NewStem(name, im.names).Claim()
	im.byPath[pkgPath] = local

	spec := ImportSpec{Path: pkgPath}
	if local != name || local != path.Base(pkgPath) {
		spec.Alias = local
	}
	im.specs = append(im.specs, spec)

	return local
}

// Qualifier is a types.Qualifier for code in the generated file: types of
// the package itself are unqualified and other packages are imported.
func (im *Imports) Qualifier(pkg *types.Package) string {
	if pkg == nil || pkg == im.self || (im.self != nil && pkg.Path() == im.self.Path()) {
		return ""
	}

	return im.Add(pkg.Path(), pkg.Name())
}

// Local returns the local name of an imported path.
func (im *Imports) Local(pkgPath string) (string, bool) {
	local, ok := im.byPath[pkgPath]
	return local, ok
}

// Names returns the local names of all imports.
func (im *Imports) Names() []string {
	names := make([]string, 0, len(im.byPath))
	for _, local := range im.byPath {
		names = append(names, local)
	}
	slices.Sort(names)

	return names
}

// Specs returns the imports sorted by path.
func (im *Imports) Specs() []ImportSpec {
	specs := slices.Clone(im.specs)
	slices.SortFunc(specs, func(a, b ImportSpec) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return specs
}
