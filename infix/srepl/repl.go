package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/symbo/expr"
	"github.com/npillmayer/symbo/expr/simplify"
	"github.com/npillmayer/symbo/infix"
	"github.com/npillmayer/symbo/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// errQuit signals the end of the session.
var errQuit = errors.New("quit")

// main() starts an interactive CLI ("S.REPL"), where users may enter infix
// expressions. S.REPL will simplify every expression and print out the result.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	all := flag.Bool("all", false, "Start with every distribution and expansion enabled")
	rulef := flag.String("rules", "", "Rule options, e.g. \"distribute-negative=on,ln-mode=expand\"")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to SREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up the rule configuration
	rules := simplify.Default()
	if *all {
		rules = simplify.All()
	}
	rules, err := applyRuleOptions(rules, *rulef)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("symbo> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		rules: rules,
		repl:  repl,
		rt:    runtime.NewRuntimeEnvironment(),
	}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	//
	// load an init file and start receiving commands / expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func applyRuleOptions(rules simplify.Rules, options string) (simplify.Rules, error) {
	for _, opt := range strings.Split(options, ",") {
		if opt = strings.TrimSpace(opt); opt == "" {
			continue
		}
		kv := strings.SplitN(opt, "=", 2)
		if len(kv) != 2 {
			return rules, fmt.Errorf("rule option %q is not of the form name=value", opt)
		}
		var err error
		if rules, err = simplify.ParseRuleFlag(rules, kv[0], kv[1]); err != nil {
			return rules, err
		}
	}
	return rules, nil
}

// Intp is our interpreter object
type Intp struct {
	rules simplify.Rules
	repl  *readline.Instance
	rt    *runtime.Runtime
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil && err != errQuit {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err = intp.Eval(line); err == errQuit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a line of input: either a command or an expression to
// simplify. Errors are reported to the user and returned.
//
func (intp *Intp) Eval(line string) error {
	var err error
	if cmd, args := splitCommand(line); cmd != "" {
		err = intp.Execute(cmd, args)
	} else if name, value, ok := splitDefinition(line); ok {
		err = intp.define(name, value)
	} else {
		err = intp.simplify(line)
	}
	if err != nil && err != errQuit {
		pterm.Error.Println(err.Error())
	}
	return err
}

func splitCommand(line string) (string, string) {
	if !strings.HasPrefix(line, ":") {
		return "", ""
	}
	fields := strings.SplitN(line[1:], " ", 2)
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.TrimSpace(fields[1])
}

// splitDefinition splits "name := expr".
func splitDefinition(line string) (string, string, bool) {
	kv := strings.SplitN(line, ":=", 2)
	if len(kv) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]), true
}

// Execute runs a command.
func (intp *Intp) Execute(cmd string, args string) error {
	tracer().Debugf("command %s %q", cmd, args)
	switch cmd {
	case "quit", "q":
		return errQuit
	case "rules":
		pterm.Info.Println(intp.rules.String())
	case "set":
		opt := strings.Fields(args)
		if len(opt) != 2 {
			return fmt.Errorf("usage: :set <option> <value>")
		}
		rules, err := simplify.ParseRuleFlag(intp.rules, opt[0], opt[1])
		if err != nil {
			return err
		}
		intp.rules = rules
		pterm.Info.Println(intp.rules.String())
	case "tree":
		n, err := intp.parse(args)
		if err != nil {
			return err
		}
		pterm.Println(n.String())
		pterm.DefaultTree.WithRoot(treeFrom(n)).Render()
	case "postfix":
		postfix, err := infix.Postfix(args)
		if err != nil {
			return err
		}
		pterm.Info.Println(strings.Join(postfix, " "))
	case "eq":
		parts := strings.SplitN(args, ";", 2)
		if len(parts) != 2 {
			return fmt.Errorf("usage: :eq <expr> ; <expr>")
		}
		a, err := intp.parse(parts[0])
		if err != nil {
			return err
		}
		b, err := intp.parse(parts[1])
		if err != nil {
			return err
		}
		eq, err := simplify.Equal(a, b)
		if err != nil {
			return err
		}
		pterm.Info.Println(eq)
	case "eval":
		n, err := intp.parse(args)
		if err != nil {
			return err
		}
		v, err := expr.Evaluate(n, intp.rt.Bindings())
		if err != nil {
			return err
		}
		pterm.Info.Println(v)
	case "let":
		kv := strings.SplitN(args, "=", 2)
		if len(kv) != 2 {
			return fmt.Errorf("usage: :let <name> = <expr>")
		}
		return intp.define(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
	case "defs":
		for _, def := range intp.rt.Definitions() {
			pterm.Info.Println(def)
		}
	default:
		return fmt.Errorf("unknown command :%s", cmd)
	}
	return nil
}

// parse parses an expression and substitutes bound names.
func (intp *Intp) parse(text string) (expr.Node, error) {
	n, err := infix.Parse(text)
	if err != nil {
		return nil, err
	}
	return intp.rt.Substitute(n), nil
}

func (intp *Intp) simplify(text string) error {
	n, err := intp.parse(text)
	if err != nil {
		return err
	}
	s, err := simplify.Simplify(n, intp.rules)
	if err != nil {
		return err
	}
	pterm.Info.Println(s.String())
	return nil
}

func (intp *Intp) define(name, text string) error {
	if atom, err := infix.Parse(name); err != nil || atom.Kind() != expr.AtomKind {
		return fmt.Errorf("cannot bind %q", name)
	}
	n, err := infix.Parse(text)
	if err != nil {
		return err
	}
	s, err := simplify.Simplify(intp.rt.Substitute(n), intp.rules)
	if err != nil {
		return err
	}
	value, _, err := intp.rt.Define(name, s)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s := %s", name, value))
	return nil
}

// treeFrom converts an expression tree into a pterm tree for display.
func treeFrom(n expr.Node) pterm.TreeNode {
	ll := pterm.LeveledList{}
	expr.Walk(n, func(n expr.Node, depth int) bool {
		text := n.String()
		if op := expr.OpOf(n); op != expr.NoOp {
			text = op.Name()
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"symbo.parse", "symbo.expr", "symbo.scanner", "symbo.runtime"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}
