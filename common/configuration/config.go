package configuration

import (
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var (
	ErrInvalidOption = errors.New("invalid option")
)

// ContainerOptions configures the containers built by the workload driver, along with the workload itself.
//
// Options are read from command-line flags and, if -yaml is given, from a YAML file.
type ContainerOptions struct {
	config.LoggerOptions `yaml:",inline" json:"logger_options"`

	InitialCapacity int   `name:"initial-capacity" json:"initial-capacity" yaml:"initial-capacity" description:"Initial capacity of every array-backed container."`
	BucketCount     int   `name:"buckets"          json:"buckets"          yaml:"buckets"          description:"Number of buckets of every hash map. Hash maps never rehash."`
	MaxSlots        int   `name:"max-slots"        json:"max-slots"        yaml:"max-slots"        description:"Maximum number of storage slots that may be reserved at once. 0 means unbounded."`
	NumOperations   int   `name:"ops"              json:"ops"              yaml:"ops"              description:"Number of elements or operations per workload phase."`
	Workers         int   `name:"workers"          json:"workers"          yaml:"workers"          description:"Number of goroutines sharing the synchronized hash map."`
	Seed            int64 `name:"seed"             json:"seed"             yaml:"seed"             description:"Seed of the workload's random number generator."`

	// PrettyPrintOptions, when true, instructs the workload driver to pretty-print
	// the ContainerOptions struct when the program first begins running.
	PrettyPrintOptions bool `name:"pretty_print_options" json:"pretty_print_options" yaml:"pretty_print_options"`
}

// DefaultContainerOptions returns the options used when no flag overrides them.
func DefaultContainerOptions() *ContainerOptions {
	return &ContainerOptions{
		InitialCapacity: 4,
		BucketCount:     64,
		MaxSlots:        0,
		NumOperations:   10_000,
		Workers:         4,
		Seed:            1337,
	}
}

// Validate checks that every numeric option is in range. It is called by config.ValidateOptions once the
// flags (and YAML file, if any) have been applied.
func (opts *ContainerOptions) Validate() error {
	if opts.InitialCapacity < 1 {
		return errors.Wrapf(ErrInvalidOption, "initial-capacity must be positive (got %d)", opts.InitialCapacity)
	}

	if opts.BucketCount < 1 {
		return errors.Wrapf(ErrInvalidOption, "buckets must be positive (got %d)", opts.BucketCount)
	}

	if opts.MaxSlots < 0 {
		return errors.Wrapf(ErrInvalidOption, "max-slots cannot be negative (got %d)", opts.MaxSlots)
	}

	if opts.NumOperations < 1 {
		return errors.Wrapf(ErrInvalidOption, "ops must be positive (got %d)", opts.NumOperations)
	}

	if opts.Workers < 1 {
		return errors.Wrapf(ErrInvalidOption, "workers must be positive (got %d)", opts.Workers)
	}

	return nil
}

func (opts *ContainerOptions) Clone() *ContainerOptions {
	clone := *opts
	return &clone
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (opts *ContainerOptions) PrettyString(indentSize int) string {
	indentBuilder := strings.Builder{}
	for i := 0; i < indentSize; i++ {
		indentBuilder.WriteString(" ")
	}

	m, err := json.MarshalIndent(opts, "", indentBuilder.String())
	if err != nil {
		panic(err)
	}

	return string(m)
}

func (opts *ContainerOptions) String() string {
	m, err := json.Marshal(opts)
	if err != nil {
		panic(err)
	}

	return string(m)
}
