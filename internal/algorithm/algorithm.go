package algorithm

// Result is the outcome of a single generation run.
type Result struct {
	Value string
	// TargetLength is the randomized length hint computed for the run. It
	// does not constrain Value.
	TargetLength uint
}

// Option configures an Algorithm.
type Option func(*Algorithm)

// WithRandSource replaces the factory used to obtain the random source of
// each run. A nil factory is ignored.
func WithRandSource(source SourceFunc) Option {
	return func(a *Algorithm) {
		if source != nil {
			a.source = source
		}
	}
}

// WithLengthFunc replaces the randomized length policy. A nil function is
// ignored.
func WithLengthFunc(fn LengthFunc) Option {
	return func(a *Algorithm) {
		if fn != nil {
			a.length = fn
		}
	}
}

// Algorithm is an ordered pipeline of Generators.
type Algorithm struct {
	generators []Generator
	source     SourceFunc
	length     LengthFunc
}

// New creates an empty Algorithm.
func New(opts ...Option) *Algorithm {
	a := &Algorithm{
		source: NewRand,
		length: CalculateStringLength,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddGenerator appends g to the end of the pipeline and returns the
// Algorithm so calls can be chained.
func (a *Algorithm) AddGenerator(g Generator) *Algorithm {
	if g == nil {
		panic("algorithm: nil generator")
	}
	a.generators = append(a.generators, g)
	return a
}

// Len returns the number of Generators in the pipeline.
func (a *Algorithm) Len() int {
	return len(a.generators)
}

// Generate runs the pipeline once and returns the generated value.
func (a *Algorithm) Generate(averageLength uint) string {
	return a.Run(averageLength).Value
}

// Run executes the pipeline once. Every Generator is applied in insertion
// order to the value produced by its predecessor, starting from the empty
// string. An empty pipeline returns a zero Result without creating a random
// source.
func (a *Algorithm) Run(averageLength uint) Result {
	if len(a.generators) == 0 {
		return Result{}
	}

	rnd := a.source()
	target := a.length(averageLength, rnd)

	value := ""
	for sequence, g := range a.generators {
		value = g.Generate(sequence, value, rnd)
	}

	return Result{Value: value, TargetLength: target}
}
