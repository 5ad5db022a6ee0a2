package engine

// Message is the record every encoder renders.
type Message struct {
	Msg string `json:"msg"`
}

// DemoMessage returns the fixed record the tool emits.
func DemoMessage() Message {
	return Message{Msg: "hello world"}
}
