package oledterm

// CommandKind identifies a console command.
type CommandKind uint8

const (
	// CommandNone is an empty line, an unknown verb or a command with
	// missing or malformed arguments. It is silently ignored.
	CommandNone CommandKind = iota
	CommandLED
	CommandHelp
	CommandRestart
)

func (k CommandKind) String() string {
	switch k {
	case CommandLED:
		return "led"
	case CommandHelp:
		return "help"
	case CommandRestart:
		return "restart"
	default:
		return "none"
	}
}

// Command is a parsed command line.
type Command struct {
	Kind CommandKind

	// Index and Active are only set for CommandLED. Index is 1, 2 or 3.
	Index  int
	Active bool
}

// Verbs are matched in order by comparing a fixed number of leading bytes,
// so longer tokens with the same prefix (ledx, helpme, restore) match too.
var verbs = [...]struct {
	prefix string
	kind   CommandKind
}{
	{"led", CommandLED},
	{"help", CommandHelp},
	{"rest", CommandRestart},
}

// Tokenizer splits a command line into tokens separated by CR, LF, space or
// tab. Tokens are produced on demand and alias the line.
type Tokenizer struct {
	rest []byte
}

// NewTokenizer returns a tokenizer over line.
func NewTokenizer(line []byte) Tokenizer {
	return Tokenizer{rest: line}
}

// Next returns the next token, or false when the line is exhausted.
func (t *Tokenizer) Next() ([]byte, bool) {
	start := 0
	for start < len(t.rest) && isDelimiter(t.rest[start]) {
		start++
	}
	if start == len(t.rest) {
		t.rest = nil
		return nil, false
	}
	end := start
	for end < len(t.rest) && !isDelimiter(t.rest[end]) {
		end++
	}
	token := t.rest[start:end]
	t.rest = t.rest[end:]
	return token, true
}

func isDelimiter(c byte) bool {
	switch c {
	case '\r', '\n', ' ', '\t':
		return true
	}
	return false
}

// ParseCommand parses a completed line. Anything that is not a well-formed
// command results in CommandNone.
func ParseCommand(line []byte) Command {
	tokens := NewTokenizer(line)
	verb, ok := tokens.Next()
	if !ok {
		return Command{}
	}
	kind := CommandNone
	for _, v := range verbs {
		if len(verb) >= len(v.prefix) && string(verb[:len(v.prefix)]) == v.prefix {
			kind = v.kind
			break
		}
	}
	switch kind {
	case CommandLED:
		return parseLED(&tokens)
	case CommandHelp, CommandRestart:
		return Command{Kind: kind}
	}
	return Command{}
}

// parseLED parses the index and state tokens of the led command. Only the
// first byte of each token is looked at.
func parseLED(tokens *Tokenizer) Command {
	number, ok := tokens.Next()
	if !ok {
		return Command{}
	}
	state, ok := tokens.Next()
	if !ok {
		return Command{}
	}
	if number[0] < '1' || number[0] > '0'+NumIndicators {
		return Command{}
	}
	return Command{
		Kind:   CommandLED,
		Index:  int(number[0] - '0'),
		Active: state[0] != '0',
	}
}

// Dispatch executes a command. It is called by WriteByte for every completed
// line, but can also be used to inject commands directly.
func (c *Console) Dispatch(cmd Command) {
	switch cmd.Kind {
	case CommandLED:
		c.leds.SetIndicator(cmd.Index, cmd.Active)
	case CommandHelp:
		c.writeString(Usage)
	case CommandRestart:
		c.Reset()
		c.writeString(Banner)
		for i := 1; i <= NumIndicators; i++ {
			c.leds.SetIndicator(i, false)
		}
	case CommandNone:
	}
}
