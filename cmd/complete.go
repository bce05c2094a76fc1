package cmd

import (
	"flag"

	"github.com/etnz/finreport/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// statementFiles predicts the spreadsheets frs can load.
var statementFiles = predict.Or(predict.Files("*.xlsx"), predict.Files("*.xls"), predict.Files("*.csv"))

// predictors of flag values, by command then flag name. "" is the global command.
var predictors = map[string]map[string]complete.Predictor{
	"": {
		"session":    predict.Files("*.json"),
		"dictionary": predict.Files("*.yaml"),
		"v":          predict.Nothing,
		"raw":        predict.Nothing,
	},
	"load":      {"analyze": predict.Nothing},
	"benchmark": {"industry": predict.Set(industryIDs())},
	"export":    {"o": predict.Files("*.txt")},
}

// argPredictors predict the positional arguments of commands.
var argPredictors = map[string]complete.Predictor{
	"load": statementFiles,
}

func flagPredictors(command string, fs *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		p, ok := predictors[command][f.Name]
		if !ok {
			p = predict.Something
		}
		res[f.Name] = p
	})
	return res
}

// Completion describes the frs command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors("", flag.CommandLine),
	}
	for _, group := range Commands {
		for _, c := range group {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagPredictors(c.Name(), fs),
				Args:  argPredictors[c.Name()],
			}
		}
	}
	root.Sub["select"].Flags["group"] = predictGroups
	root.Sub["topic"].Args = predictTopics
	return root
}

// predictGroups predicts the group names of the dictionary.
var predictGroups = complete.PredictFunc(func(string) []string {
	dict, err := loadDictionary()
	if err != nil {
		return nil
	}
	var names []string
	for _, g := range dict.Groups {
		names = append(names, g.Name)
	}
	return names
})

var predictTopics = complete.PredictFunc(func(string) []string {
	topics, _ := docs.GetAllTopics()
	return topics
})

// Lookup reports whether name is a frs subcommand.
func Lookup(name string) bool {
	for _, group := range Commands {
		for _, c := range group {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}
