// Package events defines the typed contract of events emitted by an assistant
// session.
//
// Kinds carry the wire names used by the hosted assistant:
//
//   - CallStarted (call-start): the call is connected.
//   - CallEnded (call-end): the call is over, for whatever reason.
//   - SpeechStarted (speech-start): the assistant started speaking.
//   - SpeechEnded (speech-end): the assistant stopped speaking.
//   - VolumeLevel (volume-level): current output volume in the range [0, 1].
//   - Message (message): a client message; see [MessageType] for the
//     subscribed types.
//   - Error (error): the session failed, optionally with a human readable
//     message.
//
// Events are delivered serially by a session. Every error is terminal for
// the current call.
package events
