// Package completion generates shell completion scripts for a flag-based command.
package completion

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Shell is a supported completion target.
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	PowerShell Shell = "powershell"
	Elvish     Shell = "elvish"
)

// Shells lists every supported shell.
var Shells = []Shell{Bash, Zsh, Fish, PowerShell, Elvish}

// ParseShell resolves a shell name, ignoring case.
func ParseShell(s string) (Shell, error) {
	for _, sh := range Shells {
		if strings.EqualFold(s, string(sh)) {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s (expected one of %s)", s, strings.Join(ShellNames(), ", "))
}

// ShellNames returns the names of all supported shells.
func ShellNames() []string {
	names := make([]string, len(Shells))
	for i, sh := range Shells {
		names[i] = string(sh)
	}
	return names
}

// Flag describes one command line flag.
type Flag struct {
	// Name is the long name without dashes.
	Name string
	// Short is an optional one-letter name.
	Short string
	Help  string
	// Values, when set, are the accepted arguments of a flag that takes one.
	Values []string
}

// TakesValue reports whether the flag consumes the next argument.
func (f Flag) TakesValue() bool {
	return len(f.Values) > 0
}

// Command describes the command to complete. Positional arguments are files.
type Command struct {
	Name  string
	Flags []Flag
}

func (c Command) funcName() string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(c.Name)
}

func (c Command) words() string {
	var words []string
	for _, f := range c.Flags {
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
		words = append(words, "--"+f.Name)
	}
	return strings.Join(words, " ")
}

// Generate writes the completion script for shell to w.
func Generate(w io.Writer, shell Shell, cmd Command) error {
	tmpl, ok := templates[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	data := struct {
		Command
		Func  string
		Words string
	}{cmd, cmd.funcName(), cmd.words()}
	return tmpl.Execute(w, data)
}

var funcs = template.FuncMap{
	"join":      strings.Join,
	"zshSpec":   zshSpec,
	"single":    singleQuote,
	"fish":      fishQuote,
	"bashCases": bashCases,
}

var templates = map[Shell]*template.Template{
	Bash:       template.Must(template.New("bash").Funcs(funcs).Parse(bashTemplate)),
	Zsh:        template.Must(template.New("zsh").Funcs(funcs).Parse(zshTemplate)),
	Fish:       template.Must(template.New("fish").Funcs(funcs).Parse(fishTemplate)),
	PowerShell: template.Must(template.New("powershell").Funcs(funcs).Parse(powershellTemplate)),
	Elvish:     template.Must(template.New("elvish").Funcs(funcs).Parse(elvishTemplate)),
}

// singleQuote quotes s for PowerShell and elvish, which both double an embedded quote.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s) + "'"
}

func bashCases(f Flag) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Name
	}
	return "--" + f.Name
}

func zshSpec(f Flag) string {
	help := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`).Replace(f.Help)
	var b strings.Builder
	b.WriteString("'")
	if f.Short != "" {
		fmt.Fprintf(&b, "(-%s --%s)'{-%s,--%s}'", f.Short, f.Name, f.Short, f.Name)
	} else {
		fmt.Fprintf(&b, "--%s", f.Name)
		if f.TakesValue() {
			b.WriteString("=")
		}
	}
	fmt.Fprintf(&b, "[%s]", help)
	if f.TakesValue() {
		fmt.Fprintf(&b, ":%s:(%s)", f.Name, strings.Join(f.Values, " "))
	}
	b.WriteString("'")
	return b.String()
}

const bashTemplate = `_{{.Func}}() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="{{.Words}}"

    case "${prev}" in
{{- range .Flags}}{{if .TakesValue}}
        {{bashCases .}})
            COMPREPLY=( $(compgen -W "{{join .Values " "}}" -- "${cur}") )
            return 0
            ;;
{{- end}}{{end}}
    esac

    if [[ ${cur} == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
    COMPREPLY=( $(compgen -f -- "${cur}") )
    return 0
}

complete -F _{{.Func}} -o bashdefault -o default {{.Name}}
`

const zshTemplate = `#compdef {{.Name}}

_{{.Func}}() {
    _arguments -s \
{{- range .Flags}}
        {{zshSpec .}} \
{{- end}}
        '*:input file:_files'
}

if [ "$funcstack[1]" = "_{{.Func}}" ]; then
    _{{.Func}} "$@"
else
    compdef _{{.Func}} {{.Name}}
fi
`

const fishTemplate = `{{$name := .Name}}{{range .Flags -}}
complete -c {{$name}}{{if .Short}} -s {{.Short}}{{end}} -l {{.Name}}{{if .TakesValue}} -x -a {{fish (join .Values " ")}}{{end}} -d {{fish .Help}}
{{end}}`

const powershellTemplate = `using namespace System.Management.Automation
using namespace System.Management.Automation.Language

Register-ArgumentCompleter -Native -CommandName {{single .Name}} -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $completions = @(
{{- range .Flags}}
        [CompletionResult]::new({{single (print "--" .Name)}}, {{single .Name}}, [CompletionResultType]::ParameterName, {{single .Help}})
{{- if .Short}}
        [CompletionResult]::new({{single (print "-" .Short)}}, {{single .Short}}, [CompletionResultType]::ParameterName, {{single .Help}})
{{- end}}
{{- end}}
    )

    $completions.Where{ $_.CompletionText -like "$wordToComplete*" } |
        Sort-Object -Property ListItemText
}
`

const elvishTemplate = `use str

set edit:completion:arg-completer[{{.Name}}] = {|@words|
    var candidates = [
{{- range .Flags}}
        {{single (print "--" .Name)}}
{{- if .Short}}
        {{single (print "-" .Short)}}
{{- end}}
{{- end}}
    ]
    var current = $words[-1]
    if (str:has-prefix $current -) {
        for c $candidates {
            if (str:has-prefix $c $current) {
                put $c
            }
        }
    } else {
        edit:complete-filename $current
    }
}
`
