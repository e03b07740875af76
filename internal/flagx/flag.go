// Package flagx holds small helpers for command-line parsing that let several
// configuration layers share os.Args without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Both "-f value" and "-f=value" forms are recognised. A value is taken from
// the next argument only when that argument does not itself start with '-'.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// An empty string means no config file was requested.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// JsonConfigFlags is ConfigFileFlag applied to the process arguments.
func JsonConfigFlags() string {
	return ConfigFileFlag(os.Args[1:])
}

// SplitList splits a comma separated list, trimming blanks and trailing
// slashes and dropping empty items.
func SplitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimRight(strings.TrimSpace(p), "/"); v != "" {
			out = append(out, v)
		}
	}
	return out
}
