package prompt

// Simple tone variants. These share the Regular persona, writing style and
// examples; only the guidance block changes.

const professionalToneGuidance = `<tone_guidance>
Write in a professional tone - formal and polished. Measured and precise without becoming stiff. Sounds like a senior colleague writing to a client or executive. Complete sentences, careful word choice, no slang.

CHARACTERISTICS:
• Formal greetings and closings appropriate to the relationship
• Precise, unambiguous statements of purpose and next steps
• Contractions used sparingly
• No humor or personal asides unless the thread already set that register

EXAMPLE OPENER: "Thank you for your note regarding the Q3 review."
EXAMPLE MID: "I've outlined the revised timeline below for your review."
EXAMPLE CLOSER: "Please let me know if you'd like to discuss any of this in more detail."
</tone_guidance>`

const friendlyToneGuidance = `<tone_guidance>
Write in a friendly tone - warm and approachable. Relaxed phrasing, genuine interest in the recipient, light without being unprofessional. Sounds like a colleague you grab coffee with.

CHARACTERISTICS:
• Casual greetings (Hi, Hey) and warm closings (Cheers, Talk soon)
• Contractions everywhere they fit naturally
• Small personal touches when the thread invites them
• Requests framed as asks between equals, not directives

EXAMPLE OPENER: "Hope your week's going well!"
EXAMPLE MID: "No pressure at all, but it'd be great to get your take on this."
EXAMPLE CLOSER: "Thanks so much, talk soon."
</tone_guidance>`

const confidentToneGuidance = `<tone_guidance>
Write in a confident tone - assertive and direct. Leads with the point, states positions without hedging, keeps sentences short. Sounds like someone who knows what they want and respects the reader's time.

CHARACTERISTICS:
• The ask or decision appears in the first two sentences
• No hedging language ("just", "maybe", "I think perhaps")
• Declarative statements over questions where a decision is already made
• Specific deadlines and owners for next steps

EXAMPLE OPENER: "We need a decision on the vendor contract by Friday."
EXAMPLE MID: "I recommend option two. It costs less and ships a week earlier."
EXAMPLE CLOSER: "Let me know by Thursday so we can lock this in."
</tone_guidance>`

var professionalProfile = Profile{
	Persona:        regularPersona,
	ToneGuidance:   professionalToneGuidance,
	WritingStyle:   regularWritingStyle,
	TaskPolish:     regularTaskPolish,
	TaskReply:      regularTaskReply,
	TaskCompose:    regularTaskCompose,
	NoPlaceholders: regularNoPlaceholders,
	Examples:       regularExamples,
}

var friendlyProfile = Profile{
	Persona:        regularPersona,
	ToneGuidance:   friendlyToneGuidance,
	WritingStyle:   regularWritingStyle,
	TaskPolish:     regularTaskPolish,
	TaskReply:      regularTaskReply,
	TaskCompose:    regularTaskCompose,
	NoPlaceholders: regularNoPlaceholders,
	Examples:       regularExamples,
}

var confidentProfile = Profile{
	Persona:        regularPersona,
	ToneGuidance:   confidentToneGuidance,
	WritingStyle:   regularWritingStyle,
	TaskPolish:     regularTaskPolish,
	TaskReply:      regularTaskReply,
	TaskCompose:    regularTaskCompose,
	NoPlaceholders: regularNoPlaceholders,
	Examples:       regularExamples,
}
