package session

var correctMessages = []string{
	"Super gemacht!",
	"Genau richtig!",
	"Du bist ein Mathe-Genie!",
	"Weiter so!",
	"Fantastisch!",
	"Ausgezeichnet!",
}

var incorrectMessages = []string{
	"Keine Sorge, Übung macht den Meister.",
	"Fast geschafft, versuch es weiter!",
	"Das war knifflig, beim nächsten Mal klappt's!",
	"Gib nicht auf!",
	"Jeder Fehler ist eine Chance zu lernen.",
}

// CorrectMessages returns the affirmations picked from after a correct answer.
func CorrectMessages() []string {
	return append([]string(nil), correctMessages...)
}

// IncorrectMessages returns the encouragements picked from after an incorrect answer.
func IncorrectMessages() []string {
	return append([]string(nil), incorrectMessages...)
}
