package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guilt/hashfn/pkg/buildinfo"
	"github.com/guilt/hashfn/pkg/common"
	"github.com/guilt/hashfn/pkg/completion"
	herrors "github.com/guilt/hashfn/pkg/errors"
	"github.com/guilt/hashfn/pkg/file"
	_ "github.com/guilt/hashfn/pkg/hashers" // Blank import to trigger init()
	"github.com/guilt/hashfn/pkg/lifecycle"
	"github.com/guilt/hashfn/pkg/log"
)

const (
	binaryName = "hashfn"
	// defaultEnv names a catalogued algorithm that replaces sha256 as the fallback.
	defaultEnv = "HASHFN_DEFAULT"
)

type config struct {
	source     file.Source
	algos      map[common.Algorithm]*bool
	noDefault  bool
	completion string
	decompress string
	progress   bool
	list       bool
	version    bool
	args       []string
}

// active reports whether the flag of algo (or one of its aliases) was given.
func (c *config) active(algo common.Algorithm) bool {
	p, ok := c.algos[algo]
	return ok && *p
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.NewLoggerTo(stderr)
	file.SetLogger(logger)

	cfg, fs, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, fs)
		return 0
	}
	if err != nil {
		logger.Errorf("Invalid arguments: error=%v", err)
		fmt.Fprintln(stderr, "For more information, try '--help'.")
		return herrors.ExitCode(err)
	}

	switch {
	case cfg.version:
		fmt.Fprintf(stdout, "%s %s\n", binaryName, buildinfo.Get())
		return 0
	case cfg.list:
		printList(stdout)
		return 0
	case cfg.completion != "":
		shell, err := completion.ParseShell(cfg.completion)
		if err != nil {
			logger.Errorf("Invalid completion shell: error=%v", err)
			return herrors.ExitCode(herrors.Usagef("%v", err))
		}
		if err := completion.Generate(stdout, shell, completionCommand()); err != nil {
			logger.Errorf("Writing completion script: shell=%s, error=%v", shell, err)
			return 1
		}
		return 0
	}

	if err := validate(cfg); err != nil {
		logger.Errorf("Invalid arguments: error=%v", err)
		fmt.Fprintln(stderr, "For more information, try '--help'.")
		return herrors.ExitCode(err)
	}
	compression, err := file.ParseCompression(cfg.decompress)
	if err != nil {
		logger.Errorf("Invalid arguments: error=%v", err)
		return herrors.ExitCode(herrors.Usagef("%v", err))
	}

	sel, err := common.Select(cfg.active, fallbackAlgorithm(logger), !cfg.noDefault)
	if err != nil {
		logger.Errorf("Selecting algorithm: error=%v", err)
		return 1
	}
	for _, algo := range sel.Ignored {
		logger.Warnf("Ignoring algorithm: algo=%s, using=%s", algo, sel.Hasher.Name)
	}

	rc, err := file.Open(cfg.source, stdin)
	if err != nil {
		logger.Errorf("Error opening input: input=%s, error=%v", cfg.source, err)
		return herrors.ExitCode(err)
	}
	// Closing the decoded stream also closes the input.
	input := file.Decompress(rc, compression)
	defer input.Close()

	if sel.None {
		fmt.Fprintln(stdout, sel.Text())
		return 0
	}
	if sel.Defaulted {
		logger.Debugf("No algorithm requested, using default: algo=%s", sel.Hasher.Name)
	}

	var progressFunc func(io.Writer, string, int64) common.FileLifecycle
	if cfg.progress && sel.Hasher.Available() {
		progressFunc = lifecycle.MakeProgressBars
	} else {
		progressFunc = lifecycle.MakeDefaultLifecycle
	}

	result, err := compute(sel.Hasher, input, inputSize(cfg, compression), cfg.source.String(), progressFunc, stderr)
	if err != nil {
		logger.Errorf("Error hashing input: input=%s, error=%v", cfg.source, err)
		return herrors.ExitCode(err)
	}
	fmt.Fprintln(stdout, result)
	return 0
}

// inputSize returns the byte count of the stream to hash, or -1 when unknown.
// The on-disk size only describes the stream when nothing is decoded.
func inputSize(cfg *config, c file.Compression) int64 {
	if c != file.CompressionNone {
		return -1
	}
	return file.Size(cfg.source)
}

// compute runs the selected hasher over reader, reporting progress through the lifecycle from progressFunc.
func compute(h common.Hasher, reader io.Reader, size int64, name string, progressFunc func(io.Writer, string, int64) common.FileLifecycle, stderr io.Writer) (string, error) {
	lc := progressFunc(stderr, name, size)
	defer lc.OnEnd()

	result, err := h.Compute(lifecycle.Wrap(reader, lc, size))
	if err != nil {
		return "", &herrors.HashError{Algorithm: h.Name, Err: err}
	}
	return result, nil
}

// fallbackAlgorithm returns the algorithm used when no flag is given.
func fallbackAlgorithm(logger interface{ Warnf(string, ...any) }) common.Algorithm {
	name := strings.TrimSpace(os.Getenv(defaultEnv))
	if name == "" {
		return common.GetDefaultHashAlgorithm()
	}
	algo, ok := common.ParseAlgorithm(name)
	if !ok {
		logger.Warnf("Ignoring %s: algo=%q, supported=%s", defaultEnv, name, strings.Join(common.GetAllHasherNames(), ", "))
		return common.GetDefaultHashAlgorithm()
	}
	return algo
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet(binaryName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVar(&cfg.source.Stdin, "stdin", false, "Use stdin instead of file")
	fs.BoolVar(&cfg.source.Stdin, "i", false, "Use stdin instead of file")
	fs.BoolVar(&cfg.noDefault, "no-default", false, "Print \""+common.NoAlgorithmSelected+"\" instead of falling back to "+common.GetDefaultHashAlgorithm().String())
	fs.StringVar(&cfg.completion, "completion", "", "Generate a completion script for SHELL ("+strings.Join(completion.ShellNames(), ", ")+")")
	fs.StringVar(&cfg.decompress, "decompress", "", "Decode the input before hashing ("+strings.Join(compressionNames(), ", ")+")")
	fs.BoolVar(&cfg.progress, "progress", false, "Show progress bar during hashing")
	fs.BoolVar(&cfg.list, "list", false, "List algorithms and exit")
	fs.BoolVar(&cfg.version, "version", false, "Print version information")
	fs.BoolVar(&cfg.version, "V", false, "Print version information")

	cfg.algos = make(map[common.Algorithm]*bool)
	for _, algo := range common.Algorithms() {
		selected := new(bool)
		cfg.algos[algo] = selected
		fs.BoolVar(selected, algo.String(), false, algorithmHelp(algo))
		for _, alias := range algo.Aliases() {
			fs.BoolVar(selected, alias, false, algorithmHelp(algo))
		}
	}
	return fs
}

// parseArgs parses flags and positionals in any order.
// Everything after a bare "--" is positional.
func parseArgs(args []string) (*config, *flag.FlagSet, error) {
	cfg := &config{}
	fs := newFlagSet(cfg)

	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, fs, err
			}
			return nil, fs, herrors.Usagef("%v", err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			cfg.args = append(cfg.args, rest...)
			break
		}
		cfg.args = append(cfg.args, rest[0])
		rest = rest[1:]
		args = rest
	}
	return cfg, fs, nil
}

// validate checks the positional arguments and input source.
func validate(cfg *config) error {
	if len(cfg.args) > 1 {
		return herrors.Usagef("unexpected argument '%s'", cfg.args[1])
	}
	if len(cfg.args) == 1 {
		cfg.source.Path = cfg.args[0]
	}
	return cfg.source.Validate()
}

func algorithmHelp(algo common.Algorithm) string {
	help := "Calculate " + algo.String()
	if h, err := common.GetHasherByAlgo(algo); err == nil && !h.Available() {
		help += " (" + h.Placeholder + ")"
	}
	if algo == common.GetDefaultHashAlgorithm() {
		help += " [default]"
	}
	return help
}

func compressionNames() []string {
	names := make([]string, len(file.Compressions))
	for i, c := range file.Compressions {
		names[i] = string(c)
	}
	return names
}

func flagNames(names ...string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if len(n) == 1 {
			parts[i] = "-" + n
		} else {
			parts[i] = "--" + n
		}
	}
	return strings.Join(parts, ", ")
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "%s %s\n\n", binaryName, buildinfo.Get().Version)
	fmt.Fprintf(w, "USAGE:\n    %s [FLAGS] [ALGORITHMS] INPUT\n", binaryName)
	fmt.Fprintf(w, "    echo example | %s [FLAGS] [ALGORITHMS] --stdin\n\n", binaryName)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FLAGS:")
	for _, names := range [][]string{{"i", "stdin"}, {"no-default"}, {"completion"}, {"decompress"}, {"progress"}, {"list"}, {"V", "version"}} {
		f := fs.Lookup(names[len(names)-1])
		arg := ""
		if f.Name == "completion" {
			arg = " SHELL"
		} else if f.Name == "decompress" {
			arg = " FORMAT"
		}
		fmt.Fprintf(tw, "    %s%s\t%s\n", flagNames(names...), arg, f.Usage)
	}
	fmt.Fprintf(tw, "    %s\t%s\n", flagNames("h", "help"), "Print help information")

	fmt.Fprintln(tw, "\nALGORITHMS:")
	for _, algo := range common.Algorithms() {
		names := append([]string{algo.String()}, algo.Aliases()...)
		fmt.Fprintf(tw, "    %s\t%s\n", flagNames(names...), algorithmHelp(algo))
	}
	fmt.Fprintln(tw, "\nARGS:")
	fmt.Fprintln(tw, "    <INPUT>\tInput file")
	tw.Flush()

	fmt.Fprintln(w, "\nNOTE:")
	fmt.Fprintln(w, "    Checksum algorithms (crc32, adler32, fnv*, sum, ...) print a read error in")
	fmt.Fprintln(w, "    place of the result and exit 0. Digest algorithms exit 1 instead.")
}

func printList(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tALIASES\tKIND\tFAMILY\tSTATUS")
	for _, h := range common.GetAllHashers() {
		status := "available"
		if !h.Available() {
			status = h.Placeholder
		}
		aliases := strings.Join(h.Aliases(), ",")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", h.Name, aliases, h.Kind, h.Family, status)
	}
	tw.Flush()
}

// completionCommand describes the command line for completion scripts.
func completionCommand() completion.Command {
	cmd := completion.Command{Name: binaryName}
	cmd.Flags = append(cmd.Flags,
		completion.Flag{Name: "stdin", Short: "i", Help: "Use stdin instead of file"},
		completion.Flag{Name: "no-default", Help: "Do not fall back to the default algorithm"},
		completion.Flag{Name: "completion", Help: "Generate a completion script", Values: completion.ShellNames()},
		completion.Flag{Name: "decompress", Help: "Decode the input before hashing", Values: compressionNames()},
		completion.Flag{Name: "progress", Help: "Show progress bar during hashing"},
		completion.Flag{Name: "list", Help: "List algorithms and exit"},
		completion.Flag{Name: "version", Short: "V", Help: "Print version information"},
		completion.Flag{Name: "help", Short: "h", Help: "Print help information"},
	)
	for _, algo := range common.Algorithms() {
		help := algorithmHelp(algo)
		cmd.Flags = append(cmd.Flags, completion.Flag{Name: algo.String(), Help: help})
		for _, alias := range algo.Aliases() {
			cmd.Flags = append(cmd.Flags, completion.Flag{Name: alias, Help: help})
		}
	}
	return cmd
}
