/*

Command gen generates the statically typed game event structs of
dem/demmsg/events.go from the game event schema in events.yml.

Usage (from the repository root):

	go run ./gen

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flag variables
var (
	schemaFile = flag.String("schema", "gen/events.yml", "event schema file")
	outFile    = flag.String("out", "dem/demmsg/events.go", "generated output file")
)

// schema is the root of the event schema file.
type schema struct {
	Events []event `yaml:"events"`
}

// event is one game event declaration.
type event struct {
	Name   string  `yaml:"name"`
	Fields []field `yaml:"fields"`
}

// field is one field of an event.
type field struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Go types of the schema kinds.
var kindTypes = map[string]string{
	"string": "string",
	"float":  "float32",
	"long":   "int32",
	"short":  "int16",
	"byte":   "int8",
	"bool":   "bool",
}

// EventValues accessors of the schema kinds.
var kindAccessors = map[string]string{
	"string": "stringVal",
	"float":  "floatVal",
	"long":   "int32Val",
	"short":  "int16Val",
	"byte":   "int8Val",
	"bool":   "boolVal",
}

func main() {
	flag.Parse()

	data, err := os.ReadFile(*schemaFile)
	if err != nil {
		fail("Failed to read schema: %v", err)
	}

	var s schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		fail("Failed to parse schema: %v", err)
	}

	for _, e := range s.Events {
		for _, f := range e.Fields {
			if kindTypes[f.Kind] == "" {
				fail("Unknown kind %q of field %s.%s", f.Kind, e.Name, f.Name)
			}
		}
	}

	if err := os.WriteFile(*outFile, generate(&s), 0644); err != nil {
		fail("Failed to write output: %v", err)
	}
	fmt.Printf("Generated %s: %d events\n", *outFile, len(s.Events))
}

func fail(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	os.Exit(1)
}

// generate renders the generated source file.
func generate(s *schema) []byte {
	b := &strings.Builder{}

	b.WriteString("// Code generated by gen/gen.go from gen/events.yml; DO NOT EDIT.\n\n")
	b.WriteString("// This file contains the statically typed game event structs, their\n")
	b.WriteString("// hash-matched field readers / writers and the event factory registry.\n\n")
	b.WriteString("package demmsg\n\n")

	writeHashVars(b, s)

	for _, e := range s.Events {
		writeEvent(b, &e)
	}

	b.WriteString("// eventFactories maps event names to constructors of their statically\n")
	b.WriteString("// typed structs.\n")
	b.WriteString("var eventFactories = map[string]func() GameEvent{\n")
	for _, e := range s.Events {
		fmt.Fprintf(b, "\t%q: func() GameEvent { return &%s{} },\n", e.Name, camel(e.Name))
	}
	b.WriteString("}\n\n")

	b.WriteString("// KnownEventName tells if an event name has a statically typed struct.\n")
	b.WriteString("// Events with unknown names are represented as *RawGameEvent.\n")
	b.WriteString("func KnownEventName(name string) bool {\n")
	b.WriteString("\t_, ok := eventFactories[name]\n")
	b.WriteString("\treturn ok\n")
	b.WriteString("}\n")

	return []byte(b.String())
}

// writeHashVars renders the deduplicated field name hash variables.
func writeHashVars(b *strings.Builder, s *schema) {
	hashVars := map[string]string{}
	for _, e := range s.Events {
		for _, f := range e.Fields {
			hv := "h" + camel(f.Name)
			if _, ok := hashVars[hv]; !ok {
				hashVars[hv] = f.Name
			}
		}
	}

	names := make([]string, 0, len(hashVars))
	width := 0
	for hv := range hashVars {
		names = append(names, hv)
		if len(hv) > width {
			width = len(hv)
		}
	}
	sort.Strings(names)

	b.WriteString("// Hashes of the field names used by the generated readers and writers.\n")
	b.WriteString("var (\n")
	for _, hv := range names {
		fmt.Fprintf(b, "\t%-*s = EntryHash(%q)\n", width, hv, hashVars[hv])
	}
	b.WriteString(")\n\n")
}

// writeEvent renders one event struct with its methods.
func writeEvent(b *strings.Builder, e *event) {
	sn := camel(e.Name)

	fmt.Fprintf(b, "// %s is the %q game event.\n", sn, e.Name)
	if len(e.Fields) == 0 {
		fmt.Fprintf(b, "type %s struct{}\n\n", sn)
	} else {
		fmt.Fprintf(b, "type %s struct {\n", sn)
		width := 0
		for _, f := range e.Fields {
			if n := len(camel(f.Name)); n > width {
				width = n
			}
		}
		for _, f := range e.Fields {
			fmt.Fprintf(b, "\t%-*s %s\n", width, camel(f.Name), kindTypes[f.Kind])
		}
		b.WriteString("}\n\n")
	}

	b.WriteString("// EventName returns the wire name of the event type.\n")
	fmt.Fprintf(b, "func (e *%s) EventName() string { return %q }\n\n", sn, e.Name)

	if len(e.Fields) == 0 {
		fmt.Fprintf(b, "func (e *%s) setValues(vals EventValues) error { return nil }\n\n", sn)
		fmt.Fprintf(b, "func (e *%s) valueByHash(h uint64) (any, bool) { return nil, false }\n\n", sn)
		return
	}

	fmt.Fprintf(b, "func (e *%s) setValues(vals EventValues) error {\n", sn)
	b.WriteString("\tvar err error\n")
	for _, f := range e.Fields {
		fmt.Fprintf(b, "\tif e.%s, err = vals.%s(h%s, %q); err != nil {\n", camel(f.Name), kindAccessors[f.Kind], camel(f.Name), f.Name)
		b.WriteString("\t\treturn err\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("\treturn nil\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "func (e *%s) valueByHash(h uint64) (any, bool) {\n", sn)
	b.WriteString("\tswitch h {\n")
	seen := map[string]bool{}
	for _, f := range e.Fields {
		hv := "h" + camel(f.Name)
		if seen[hv] {
			continue
		}
		seen[hv] = true
		fmt.Fprintf(b, "\tcase %s:\n", hv)
		fmt.Fprintf(b, "\t\treturn e.%s, true\n", camel(f.Name))
	}
	b.WriteString("\t}\n")
	b.WriteString("\treturn nil, false\n")
	b.WriteString("}\n\n")
}

// camel converts a snake_case wire name to a CamelCase Go identifier.
func camel(name string) string {
	parts := strings.Split(name, "_")
	b := &strings.Builder{}
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
