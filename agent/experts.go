package agent

import (
	"github.com/etnz/finreport"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and of solving the user's request.

			The user has loaded the financial statements of a company and wants to understand them.
			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and keep the context of your previous questions.

			Devise a plan of questions to ask to each expert and come up with the best response.
			Answer in the language of the user, Russian by default, and keep the figures exact.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert reading the statements loaded in session.
func NewAnalyst(s *finreport.Session) *Expert {
	lib := analystFunctions(s)
	return &Expert{
		Name: "Analyst",
		Description: `This is the financial Analyst. It reads the statements loaded by the user:
		the reporting periods, the value of every line item in every period, the financial ratios
		and the reports (full analysis, liquidity, profitability, stability, forecast, industry benchmark).`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
				You are a financial analyst in charge of the statements loaded by the user.
				Use the Tools to read the periods, the line items and the ratios before answering.
				Never invent a figure: when a value is not reported say so.
				Ratios are computed only when their denominator is positive, a missing ratio
				means the statement lacks the figures it needs.
			`),
		},
		Library: NewLibrary(lib),
	}
}

// NewAdvisor creates the expert grounding answers on public information.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert advisor, aware of accounting standards (RAS, IFRS),
		of the usual ratio levels of industries and of recent economic news.
		Ask the Advisor whenever you need grounding information beyond the user's statements.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in corporate finance. You leverage Google Search to
			ground your assertions in a solid truth, and relate them to the user's request.
			`),
		},
	}
}
