package dispatch

// MissionResult is the tri-state outcome of a dispatch, plus a fourth
// short-circuit state for input validation. Exactly one state is ever set;
// use the constructors, never literal structs.
type MissionResult struct {
	// Text is the mission report when the run produced content.
	Text string
	// Empty marks a run that succeeded but returned no usable content.
	Empty bool
	// Err is the failure description when the run failed.
	Err string
	// Warning is set when the topic was blank and nothing was dispatched.
	Warning string
}

// Warning shown when the topic is blank after trimming.
const BlankTopicWarning = "✏️ Please specify your mission target first."

// Warning shown when a run completes without content.
const NoContentWarning = "⚠️ No content returned from the agent."

func TextResult(text string) MissionResult {
	return MissionResult{Text: text}
}

func EmptyResult() MissionResult {
	return MissionResult{Empty: true}
}

func ErrorResult(msg string) MissionResult {
	return MissionResult{Err: msg}
}

func WarningResult(msg string) MissionResult {
	return MissionResult{Warning: msg}
}

// IsText reports a successful dispatch with content.
func (r MissionResult) IsText() bool { return r.Text != "" && r.Err == "" && !r.Empty && r.Warning == "" }

// IsEmpty reports a dispatch that ran but produced nothing.
func (r MissionResult) IsEmpty() bool { return r.Empty }

// IsError reports a failed dispatch.
func (r MissionResult) IsError() bool { return r.Err != "" }

// IsWarning reports a short-circuited dispatch (blank topic).
func (r MissionResult) IsWarning() bool { return r.Warning != "" }
