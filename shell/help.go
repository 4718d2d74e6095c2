package shell

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed helptext
var helptext embed.FS

func usageTopic(topic string) (string, error) {
	dat, err := fs.ReadFile(helptext, "helptext/"+topic+".txt")
	if errors.Is(err, fs.ErrNotExist) {
		return "", errors.New("there is no help text for the topic " + topic)
	} else if err != nil {
		return "", err
	}
	return string(dat), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	topic := "usage"
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	}
	text, err := usageTopic(topic)
	if err != nil {
		return nil, err
	}
	return msg(text), nil
}
