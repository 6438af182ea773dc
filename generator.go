package ucr

import "io/fs"

// Generate loads the form documents of a [FileProvider] and transforms them into a [Payload].
// Options can be any [LoadOption] or [TransformOption].
func Generate(fileProvider FileProvider, options ...GenerateOption) (*Payload, error) {
	return generate(func(g *generator) FileProvider {
		return fileProvider
	}, options...)
}

// GenerateFS is a version of [Generate] reading files from a [fs.FS].
// Options can also be any [FSFileProviderOption].
func GenerateFS(fs fs.FS, options ...GenerateOption) (*Payload, error) {
	return generate(func(g *generator) FileProvider {
		return NewFSFileProvider(fs, g.fsFileProviderOptions...)
	}, options...)
}

// GenerateDirectory is a version of [Generate] reading files from a directory.
// Options can also be any [FSFileProviderOption].
func GenerateDirectory(rootDir string, options ...GenerateOption) (*Payload, error) {
	return generate(func(g *generator) FileProvider {
		return NewDirectoryFileProvider(rootDir, g.fsFileProviderOptions...)
	}, options...)
}

func generate(getFileProvider func(g *generator) FileProvider, options ...GenerateOption) (*Payload, error) {
	var g generator
	for _, opt := range options {
		switch o := opt.(type) {
		case FSFileProviderOption:
			g.fsFileProviderOptions = append(g.fsFileProviderOptions, o)
		case LoadOption:
			g.loadOptions = append(g.loadOptions, o)
		case TransformOption:
			g.transformOptions = append(g.transformOptions, o)
		}
	}
	g.fileProvider = getFileProvider(&g)
	return g.generate()
}

type generator struct {
	fileProvider FileProvider

	fsFileProviderOptions []FSFileProviderOption
	loadOptions           []LoadOption
	transformOptions      []TransformOption
}

func (g generator) generate() (*Payload, error) {
	input, err := Load(g.fileProvider, g.loadOptions...)
	if err != nil {
		return nil, err
	}
	return Transform(input, g.transformOptions...)
}
