package catalog

// Channel is one of the three difficulty tracks offered for every node.
// Ordering is monotonic: A < B < C.
type Channel string

const (
	ChannelA Channel = "A" // basic
	ChannelB Channel = "B" // standard
	ChannelC Channel = "C" // challenge
)

// AllChannels returns the channels in ascending difficulty order.
func AllChannels() []Channel {
	return []Channel{ChannelA, ChannelB, ChannelC}
}

// DisplayName returns a human-readable name for a channel.
func (c Channel) DisplayName() string {
	switch c {
	case ChannelA:
		return "Basic"
	case ChannelB:
		return "Standard"
	case ChannelC:
		return "Challenge"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the three defined channels.
func (c Channel) Valid() bool {
	return c == ChannelA || c == ChannelB || c == ChannelC
}

// Above returns the next harder channel, saturating at C.
func (c Channel) Above() Channel {
	switch c {
	case ChannelA:
		return ChannelB
	case ChannelB:
		return ChannelC
	default:
		return ChannelC
	}
}

// Below returns the next easier channel, saturating at A.
func (c Channel) Below() Channel {
	switch c {
	case ChannelC:
		return ChannelB
	case ChannelB:
		return ChannelA
	default:
		return ChannelA
	}
}

// ChannelTask describes the work a node demands on one channel.
type ChannelTask struct {
	Description  string
	Requirements []string
	Deliverables []string
}

// CheckpointRule is a node's pass/fail gate: what must be demonstrated,
// what evidence is collected, and the machine-checkable thresholds.
type CheckpointRule struct {
	ID        string
	MustPass  []string
	Evidence  []string
	AutoGrade map[string]float64
}

// PathNode is one ordered unit of the curriculum. Immutable once the
// catalog is built.
type PathNode struct {
	ID            string
	Name          string
	Description   string
	Order         int
	Prerequisites []string

	ChannelTasks    map[Channel]ChannelTask
	EstimatedHours  map[Channel]int
	DifficultyLevel map[Channel]int // 1..10

	// BaseWeeks is the channel-independent timeline estimate used by the
	// recommendation engine before channel and pace multipliers apply.
	BaseWeeks float64

	Checkpoint      CheckpointRule
	RemedyResources map[string][]string // category → resource titles
}

// Task returns the task descriptor for the given channel.
func (n PathNode) Task(ch Channel) ChannelTask {
	return n.ChannelTasks[ch]
}

// Hours returns the estimated study hours for the given channel.
func (n PathNode) Hours(ch Channel) int {
	return n.EstimatedHours[ch]
}

// Difficulty returns the 1..10 difficulty rating for the given channel.
func (n PathNode) Difficulty(ch Channel) int {
	return n.DifficultyLevel[ch]
}

// AllRemedyResources flattens the remedy bundles into a single list,
// category by category in a stable order.
func (n PathNode) AllRemedyResources() []string {
	var out []string
	for _, cat := range []string{"micro-lessons", "guided-exercises", "reference-examples"} {
		out = append(out, n.RemedyResources[cat]...)
	}
	// Categories outside the standard three, if any, are appended last.
	for cat, items := range n.RemedyResources {
		switch cat {
		case "micro-lessons", "guided-exercises", "reference-examples":
		default:
			out = append(out, items...)
		}
	}
	return out
}
