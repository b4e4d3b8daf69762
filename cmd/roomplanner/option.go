package roomplanner

// Options is the root command that groups sub-commands.  The struct tags are
// interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config  string      `short:"f" long:"config" description:"planner config YAML path or URL"`
	Version bool        `short:"v" long:"version" description:"print version and exit"`
	Analyze *AnalyzeCmd `command:"analyze" description:"Analyze a floor plan or room photo once"`
	Chat    *ChatCmd    `command:"chat" description:"Analyze an image, then refine it with edit prompts read from stdin"`
}

// Init instantiates the sub-command referenced by the first argument so that
// flags.Parse can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "analyze":
		o.Analyze = &AnalyzeCmd{}
	case "chat":
		o.Chat = &ChatCmd{}
	}
}
