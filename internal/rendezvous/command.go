package rendezvous

import "strings"

// CommandKind classifies one line read from the command file (spec.md
// §6's grammar).
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandContinue
	CommandQuit
	CommandStep
	CommandNext
	CommandVars
	CommandPrint
	CommandQuery
)

// Command is a parsed command-file line: Kind plus whatever argument it
// carries (the names after "print", or the bare path for a value query).
type Command struct {
	Kind CommandKind
	Args []string
}

// ParseCommand parses one command-file line. An empty or whitespace-only
// line parses as CommandNone (the debuggee treats that as "no command
// yet" and keeps spin-polling).
func ParseCommand(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: CommandNone}
	}

	fields := strings.Fields(line)

	switch fields[0] {
	case "continue", "c":
		return Command{Kind: CommandContinue}
	case "quit", "q":
		return Command{Kind: CommandQuit}
	case "step", "s":
		return Command{Kind: CommandStep}
	case "next", "n":
		return Command{Kind: CommandNext}
	case "vars", "v":
		return Command{Kind: CommandVars}
	case "print":
		return Command{Kind: CommandPrint, Args: fields[1:]}
	default:
		return Command{Kind: CommandQuery, Args: fields[:1]}
	}
}
