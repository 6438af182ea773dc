package ucr

type FSFileProviderOption interface {
	GenerateOption
	apply(*fsFileProvider)
}

type LoadOption interface {
	GenerateOption
	apply(*loader)
}

type TransformOption interface {
	GenerateOption
	apply(*transformer)
}

// GenerateOption is any option accepted by [Generate] and its variants.
type GenerateOption interface {
	isGenerateOption()
}

type fnFSFileProviderOption func(item *fsFileProvider)

func (o fnFSFileProviderOption) apply(item *fsFileProvider) {
	o(item)
}

func (o fnFSFileProviderOption) isGenerateOption() {}

type fnLoadOption func(item *loader)

func (o fnLoadOption) apply(item *loader) {
	o(item)
}

func (o fnLoadOption) isGenerateOption() {}

type fnTransformOption func(item *transformer)

func (o fnTransformOption) apply(item *transformer) {
	o(item)
}

func (o fnTransformOption) isGenerateOption() {}
