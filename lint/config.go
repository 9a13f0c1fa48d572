// Copyright © 2026 The eolint authors

package lint

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Set is a name table used by the rule catalog. It marshals to and from a
// YAML sequence so configuration files stay readable lists.
type Set map[string]bool

// NewSet builds a Set from its members.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Has reports membership.
func (s Set) Has(name string) bool { return s[name] }

// UnmarshalYAML decodes a YAML sequence of strings into the set.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	*s = NewSet(names...)
	return nil
}

// MarshalYAML encodes the set as a sorted sequence.
func (s Set) MarshalYAML() (interface{}, error) {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// Config holds every name table the rule catalog consults. The tables are
// data, not control flow: adding a suffix or an ORM method name is a
// configuration change, not a code change. Zero-value fields fall back to
// the defaults when passed through Normalize.
type Config struct {
	// ErSuffixes is the "hall of shame": agent-noun suffixes describing
	// what a thing does rather than what it is.
	ErSuffixes Set `yaml:"er_suffixes"`

	// ProceduralVerbs are imperative verbs banned as the leading word of
	// callable and variable names.
	ProceduralVerbs Set `yaml:"procedural_verbs"`

	// AllowedExceptions are whole names (lower-cased) exempt from naming
	// checks despite matching a banned suffix or verb.
	AllowedExceptions Set `yaml:"allowed_exceptions"`

	// PropertyAliases are callable names skipped by the naming rules
	// because they conventionally alias property machinery.
	PropertyAliases Set `yaml:"property_aliases"`

	// ReceiverNames are parameter names recognized as instance or class
	// receivers in the first position.
	ReceiverNames Set `yaml:"receiver_names"`

	// MutatingMethods are in-place mutation operations on containers.
	MutatingMethods Set `yaml:"mutating_methods"`

	// MutableConstructors are builtin callables producing mutable values.
	MutableConstructors Set `yaml:"mutable_constructors"`

	// OrmMethods are persistence-style operation names.
	OrmMethods Set `yaml:"orm_methods"`

	// SafeReceiverTypes are builtin type names whose methods may collide
	// with OrmMethods without being persistence calls.
	SafeReceiverTypes Set `yaml:"safe_receiver_types"`

	// SafeConstructors are builtin callables whose results are safe
	// receivers for OrmMethods names.
	SafeConstructors Set `yaml:"safe_constructors"`

	// ReflectionCalls are dynamic-introspection primitives.
	ReflectionCalls Set `yaml:"reflection_calls"`

	// AllowedBases are unqualified base names legal to inherit from.
	AllowedBases Set `yaml:"allowed_bases"`

	// AllowedBaseModules are module names whose qualified members are
	// legal bases (abc.ABC, enum.Enum, ...).
	AllowedBaseModules Set `yaml:"allowed_base_modules"`

	// ContractBases mark a class as carrying an abstract contract.
	ContractBases Set `yaml:"contract_bases"`

	// AbstractDecorators mark a single method as abstract.
	AbstractDecorators Set `yaml:"abstract_decorators"`

	// StaticDecorators mark methods with no instance binding.
	StaticDecorators Set `yaml:"static_decorators"`

	// ValueTypeDecorators mark structural value-type declarations that
	// must be frozen.
	ValueTypeDecorators Set `yaml:"value_type_decorators"`

	// TestPrefix selects test functions for the test-purity rule.
	TestPrefix string `yaml:"test_prefix"`

	// AssertionName is the only call allowed in a test body.
	AssertionName string `yaml:"assertion_name"`

	// InitializerName is the designated initializer method name.
	InitializerName string `yaml:"initializer_name"`
}

// DefaultConfig returns the catalog's standard tables.
func DefaultConfig() *Config {
	return &Config{
		ErSuffixes: NewSet(
			"accumulator", "adapter", "aggregator", "analyzer", "broker",
			"builder", "calculator", "checker", "collector", "compiler",
			"compressor", "consumer", "controller", "converter",
			"coordinator", "creator", "decoder", "decompressor",
			"deserializer", "dispatcher", "displayer", "encoder",
			"evaluator", "executor", "exporter", "factory", "fetcher",
			"filter", "finder", "formatter", "generator", "handler",
			"helper", "importer", "interpreter", "joiner", "listener",
			"loader", "manager", "mediator", "merger", "monitor",
			"observer", "orchestrator", "organizer", "parser", "printer",
			"processor", "producer", "provider", "reader", "renderer",
			"reporter", "router", "runner", "saver", "scanner",
			"scheduler", "serializer", "sorter", "splitter", "supplier",
			"synchronizer", "tracker", "transformer", "validator",
			"worker", "wrapper", "writer",
		),
		ProceduralVerbs: NewSet(
			"accumulate", "add", "aggregate", "analyze", "append", "build",
			"calculate", "change", "check", "clean", "clear", "close",
			"collect", "compile", "compress", "control", "convert",
			"create", "decode", "decompress", "delete", "deserialize",
			"dispatch", "display", "do", "encode", "evaluate", "execute",
			"export", "fetch", "filter", "find", "format", "generate",
			"get", "handle", "hide", "import", "insert", "interpret",
			"join", "load", "manage", "merge", "modify", "open",
			"organize", "parse", "pause", "prepend", "print", "process",
			"put", "read", "receive", "refresh", "remove", "render",
			"reset", "resume", "retrieve", "route", "run", "save",
			"schedule", "search", "send", "serialize", "set", "show",
			"sort", "split", "start", "stop", "store", "transform",
			"transmit", "update", "validate", "write",
		),
		AllowedExceptions: NewSet(
			"buffer", "character", "cluster", "container", "counter",
			"error", "footer", "header", "identifier", "number", "order",
			"owner", "parameter", "pointer", "register", "server",
			"timer", "user",
		),
		PropertyAliases: NewSet("property", "getter", "setter"),
		ReceiverNames:   NewSet("self", "cls"),
		MutatingMethods: NewSet(
			// list
			"append", "extend", "insert", "remove", "pop", "clear",
			"sort", "reverse",
			// dict
			"update", "popitem", "setdefault",
			// set
			"add", "discard",
			// dunder mutation hooks
			"__setitem__", "__delitem__", "__iadd__", "__imul__",
		),
		MutableConstructors: NewSet("list", "dict", "set", "bytearray"),
		OrmMethods: NewSet(
			"save", "delete", "destroy", "update", "create", "reload",
			"find", "find_by", "where", "filter", "filter_by", "get",
			"get_or_create", "select", "insert", "update_all",
			"delete_all", "execute", "query", "order_by", "group_by",
			"having", "limit", "offset", "join", "includes",
			"eager_load", "preload", "create_table", "drop_table",
			"add_column", "remove_column",
		),
		SafeReceiverTypes: NewSet(
			"list", "dict", "set", "tuple", "str", "int", "float", "bool",
		),
		SafeConstructors: NewSet(
			"open", "int", "str", "list", "dict", "set", "tuple", "bool",
			"float",
		),
		ReflectionCalls: NewSet(
			"isinstance", "type", "hasattr", "getattr", "setattr",
			"delattr", "callable",
		),
		AllowedBases: NewSet(
			"ABC", "Protocol",
			"Exception", "BaseException", "ValueError", "TypeError",
			"RuntimeError", "AttributeError", "KeyError", "IndexError",
			"ImportError", "OSError",
			"Enum", "IntEnum", "Flag", "IntFlag",
			"object",
		),
		AllowedBaseModules:  NewSet("abc", "typing", "collections", "enum"),
		ContractBases:       NewSet("ABC", "Protocol"),
		AbstractDecorators:  NewSet("abstractmethod", "abstractproperty"),
		StaticDecorators:    NewSet("staticmethod", "classmethod"),
		ValueTypeDecorators: NewSet("dataclass"),
		TestPrefix:          "test_",
		AssertionName:       "assertThat",
		InitializerName:     "__init__",
	}
}

// Normalize fills any unset table from the defaults, so a partial
// configuration file only overrides what it names.
func (c *Config) Normalize() {
	d := DefaultConfig()
	fill := func(dst *Set, src Set) {
		if *dst == nil {
			*dst = src
		}
	}
	fill(&c.ErSuffixes, d.ErSuffixes)
	fill(&c.ProceduralVerbs, d.ProceduralVerbs)
	fill(&c.AllowedExceptions, d.AllowedExceptions)
	fill(&c.PropertyAliases, d.PropertyAliases)
	fill(&c.ReceiverNames, d.ReceiverNames)
	fill(&c.MutatingMethods, d.MutatingMethods)
	fill(&c.MutableConstructors, d.MutableConstructors)
	fill(&c.OrmMethods, d.OrmMethods)
	fill(&c.SafeReceiverTypes, d.SafeReceiverTypes)
	fill(&c.SafeConstructors, d.SafeConstructors)
	fill(&c.ReflectionCalls, d.ReflectionCalls)
	fill(&c.AllowedBases, d.AllowedBases)
	fill(&c.AllowedBaseModules, d.AllowedBaseModules)
	fill(&c.ContractBases, d.ContractBases)
	fill(&c.AbstractDecorators, d.AbstractDecorators)
	fill(&c.StaticDecorators, d.StaticDecorators)
	fill(&c.ValueTypeDecorators, d.ValueTypeDecorators)
	if c.TestPrefix == "" {
		c.TestPrefix = d.TestPrefix
	}
	if c.AssertionName == "" {
		c.AssertionName = d.AssertionName
	}
	if c.InitializerName == "" {
		c.InitializerName = d.InitializerName
	}
}

// LoadConfig reads a YAML rule-table file, filling unspecified tables
// with the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // CLI reads user-specified config
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}
