package prompt

import (
	"fmt"
	"strings"

	"github.com/manitmishra/ghostwriter/model"
)

// Output-format and formatting blocks shared by every tone.

const replyOutputFormat = `<output_format>
This is a reply to an existing email thread. Return ONLY the email body as HTML. Do NOT include a subject line.
</output_format>`

const composeOutputFormat = `<output_format>
This is a new email (not a reply). Return ONLY a raw JSON object. No markdown, no code blocks, no backticks, no explanation. Just pure JSON.
Format: {"subject": "Subject text here", "body": "<p>Email body HTML here</p>"}
</output_format>`

const formattingInstruction = `<format>
Format body content using simple HTML tags: use <p> for paragraphs, <br> for line breaks, <strong> for bold, <em> for emphasis. Keep it clean. NO <html>, <head>, or <body> tags.
</format>`

// BuildSystemPrompt assembles the full system prompt for one request.
//
// Blocks are concatenated in a fixed order: persona, sender identity,
// tone guidance, writing style, task, output format, HTML formatting,
// completion requirements, and examples last. The order is part of the
// generation contract; examples stay last so recent-context weighting
// favors them.
//
// For ToneCustom with non-empty customPreferences, the tone guidance block
// wraps the literal preference text instead of the built-in guidance.
func BuildSystemPrompt(tone Tone, mode model.Mode, contextType model.ContextType, customPreferences string) string {
	profile := tone.Profile()

	guidance := profile.ToneGuidance
	if tone == ToneCustom {
		if custom := strings.TrimSpace(customPreferences); custom != "" {
			guidance = "<tone_guidance>\n" + custom + "\n</tone_guidance>"
		}
	}

	var task string
	switch {
	case mode == model.ModePolish:
		task = profile.TaskPolish
	case contextType == model.ContextReply:
		task = profile.TaskReply
	default:
		task = profile.TaskCompose
	}

	outputFormat := composeOutputFormat
	if contextType == model.ContextReply {
		outputFormat = replyOutputFormat
	}

	sections := make([]string, 0, 9)
	sections = append(sections, profile.Persona)
	if profile.SenderIdentity != "" {
		sections = append(sections, profile.SenderIdentity)
	}
	sections = append(sections,
		guidance,
		profile.WritingStyle,
		task,
		outputFormat,
		formattingInstruction,
		profile.NoPlaceholders,
		profile.Examples,
	)

	return strings.Join(sections, "\n\n")
}

// BuildUserMessage assembles the user message from the draft and thread
// history. Reply threads are rendered as a labeled transcript in stored
// (chronological) order, followed by the mode-specific instruction.
func BuildUserMessage(draft string, ctx model.Context, mode model.Mode) string {
	var b strings.Builder

	if ctx.Type == model.ContextReply && len(ctx.Messages) > 0 {
		b.WriteString("Email thread for context:\n\n")
		for _, msg := range ctx.Messages {
			fmt.Fprintf(&b, "From %s:\n%s\n\n", msg.Sender, msg.Body)
		}
		b.WriteString("---\n\n")
	}

	switch {
	case mode == model.ModePolish:
		fmt.Fprintf(&b, "Here's my draft:\n%s\n\nPolish this into a ready-to-send email.", draft)
	case strings.TrimSpace(draft) != "":
		fmt.Fprintf(&b, "Here's what I want to say:\n%s\n\nWrite the email.", draft)
	default:
		b.WriteString("Write a reply based on the thread above.")
	}

	return b.String()
}
