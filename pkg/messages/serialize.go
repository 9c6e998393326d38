package messages

import (
	"bytes"
	"fmt"
	"io"

	messagefb "github.com/Michel-2503/Kopfrechnen/flatbuffers/message"
	snapshotfb "github.com/Michel-2503/Kopfrechnen/flatbuffers/snapshot"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)

	sessionID := builder.CreateString(m.SessionID)
	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddSessionId(builder, sessionID)
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

func DeserializeMessageFlatbuffer(b []byte) (m *Message, err error) {
	// the flatbuffers accessors panic on truncated input
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("malformed message: %v", r)
		}
	}()

	message := &Message{}
	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	message.Type = MessageType(messageFlatbuffer.Type())
	message.SessionID = string(messageFlatbuffer.SessionId())
	message.Payload = messageFlatbuffer.PayloadBytes()

	return message, nil
}

func SerializeSnapshot(view *SessionView) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)
	snapshot := SerializeSnapshotFlatbuffer(builder, view)
	builder.Finish(snapshot)
	return builder.FinishedBytes(), nil
}

func DeserializeSnapshot(b []byte) (view *SessionView, err error) {
	defer func() {
		if r := recover(); r != nil {
			view, err = nil, fmt.Errorf("failed to deserialize snapshot: %v", r)
		}
	}()
	return SnapshotFlatbufferToSessionView(snapshotfb.GetRootAsSnapshot(b, 0)), nil
}

func SerializeSnapshotFlatbuffer(builder *flatbuffers.Builder, view *SessionView) flatbuffers.UOffsetT {
	sessionID := builder.CreateString(view.SessionID)
	phase := builder.CreateString(view.Phase)
	problem := builder.CreateString(view.Problem)
	feedback := builder.CreateString(view.Feedback)

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddSessionId(builder, sessionID)
	snapshotfb.SnapshotAddPhase(builder, phase)
	snapshotfb.SnapshotAddLevel(builder, int32(view.Level))
	snapshotfb.SnapshotAddLives(builder, int32(view.Lives))
	snapshotfb.SnapshotAddScore(builder, int32(view.Score))
	snapshotfb.SnapshotAddQuestionIndex(builder, int32(view.QuestionIndex))
	snapshotfb.SnapshotAddLevelScore(builder, int32(view.LevelScore))
	snapshotfb.SnapshotAddProblem(builder, problem)
	if view.Answer != nil {
		snapshotfb.SnapshotAddAnswer(builder, int32(*view.Answer))
		snapshotfb.SnapshotAddAnswerVisible(builder, true)
	}
	snapshotfb.SnapshotAddIsAnswered(builder, view.IsAnswered)
	snapshotfb.SnapshotAddIsCorrect(builder, view.IsCorrect)
	snapshotfb.SnapshotAddFeedback(builder, feedback)
	snapshotfb.SnapshotAddCelebrating(builder, view.Celebrating)
	snapshotfb.SnapshotAddUpdatedAt(builder, view.UpdatedAt)
	return snapshotfb.SnapshotEnd(builder)
}

func SnapshotFlatbufferToSessionView(fb *snapshotfb.Snapshot) *SessionView {
	view := NewSessionViewDefaults()
	view.SessionID = string(fb.SessionId())
	view.Phase = string(fb.Phase())
	view.Level = int(fb.Level())
	view.Lives = int(fb.Lives())
	view.Score = int(fb.Score())
	view.QuestionIndex = int(fb.QuestionIndex())
	view.LevelScore = int(fb.LevelScore())
	view.Problem = string(fb.Problem())
	if fb.AnswerVisible() {
		answer := int(fb.Answer())
		view.Answer = &answer
	}
	view.IsAnswered = fb.IsAnswered()
	view.IsCorrect = fb.IsCorrect()
	view.Feedback = string(fb.Feedback())
	view.Celebrating = fb.Celebrating()
	view.UpdatedAt = fb.UpdatedAt()

	return view
}

// NewSnapshotMessage wraps the serialized view in a snapshot message.
func NewSnapshotMessage(view *SessionView) (*Message, error) {
	payload, err := SerializeSnapshot(view)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %v", err)
	}
	return &Message{
		Type:      MessageTypeServerSnapshot,
		SessionID: view.SessionID,
		Payload:   payload,
	}, nil
}
