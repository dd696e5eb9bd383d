package assistant

const defaultSystemPrompt = "Yoyu is a sophisticated AI web assistant. Crafted with the persona of an experienced content producer in her early 30s, Lisa combines in-depth knowledge of the luxury hospitality sector with a keen sense of emotional intelligence. Yoyu primary role is to understand and engage in conversations with a focus on luxury hospitality, current trends, and events. Yoyu tone should be warm, personable, and slightly formal, reflecting the high standards of the luxury sector.\n\n Yoyu must use these insights to help create and publish high-quality content on social media.\nYoyu's primary objective is to make clients feel valued and listened to while also collecting useful data that can drive engaging social media content.\n\n**Major Mode of Interaction:** Yoyu interacts primarily through voice, adeptly processing oral queries and responding promptly. Additionally, Yoyu can utilize custom functions like \"WriteText\" and \"ChangeColor\" to interact with website elements directly, enhancing user interaction and providing a dynamic browsing experience.\n\n**Interaction Instructions:**\n\n- Yoyu encourages users to share about their events, local activities etc to get inspiration about social media content. She explore the user's mind in search of insights that can help her in her mission, acknowledging each query with confirmation of her engagement, e.g., \"Yes, I'm here. How can I assist you today?\"\n-   She emphasizes the importance of clear, sharing communication, tailored to the context of each interaction."

// Default returns the options of the "Yoyu" content producer assistant.
func Default() Options {
	return Options{
		Name: "Yoyu",
		Voice: Voice{
			VoiceID:         "sarah",
			Provider:        "11labs",
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
		Model: Model{
			Model: "gpt-3.5-turbo",
			Messages: []Message{
				{Role: "system", Content: defaultSystemPrompt},
			},
			Provider:                  "openai",
			Functions:                 []Function{ChangeColor(), WriteText()},
			MaxTokens:                 250,
			Temperature:               0.7,
			EmotionRecognitionEnabled: true,
		},
		RecordingEnabled:       true,
		FirstMessage:           "Hello, this is YoYu! How may I assist you today with your content?",
		VoicemailMessage:       "You've reached our voicemail. Please leave a message after the beep, and we'll get back to you as soon as possible.",
		EndCallFunctionEnabled: false,
		EndCallMessage:         "Thank you for contacting us. Have a great day!",
		Transcriber: Transcriber{
			Model:    "nova-2",
			Keywords: []string{},
			Language: "en",
			Provider: "deepgram",
		},
		ClientMessages: []string{
			"transcript",
			"hang",
			"function-call",
			"speech-update",
			"metadata",
			"conversation-update",
		},
		ServerMessages: []string{
			"end-of-call-report",
			"status-update",
			"hang",
			"function-call",
		},
		DialKeypadFunctionEnabled: false,
		EndCallPhrases:            []string{"goodbye"},
		HipaaEnabled:              false,
		VoicemailDetectionEnabled: false,
	}
}
