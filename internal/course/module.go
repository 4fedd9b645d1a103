package course

// Module is one unit of course content with a stable integer id.
// Modules are defined at build time and never mutated at runtime.
type Module struct {
	ID          int
	Title       string
	Subtitle    string
	Description string
	Duration    string
	Tags        []string
	Difficulty  int // 1 (intro) to 5 (capstone)
}

// seedModules defines the full catalog for
// "The Unreasonable Effectiveness of Recurrent Neural Networks".
var seedModules = []Module{
	{
		ID:          0,
		Title:       "Why Sequences Matter",
		Subtitle:    "From fixed vectors to streams of data",
		Description: "What makes sequential data different, and why feedforward networks struggle with it.",
		Duration:    "20 min",
		Tags:        []string{"intro", "motivation"},
		Difficulty:  1,
	},
	{
		ID:          1,
		Title:       "From Feedforward to Recurrent",
		Subtitle:    "Adding a loop to the network",
		Description: "The recurrence relation, hidden state, and weight sharing across time steps.",
		Duration:    "25 min",
		Tags:        []string{"intro", "architecture"},
		Difficulty:  1,
	},
	{
		ID:          2,
		Title:       "The Vanilla RNN Cell",
		Subtitle:    "tanh, matrices, and hidden state",
		Description: "The update equations of a simple recurrent cell, worked through by hand.",
		Duration:    "30 min",
		Tags:        []string{"architecture", "math"},
		Difficulty:  2,
	},
	{
		ID:          3,
		Title:       "Long Short-Term Memory",
		Subtitle:    "Gates against forgetting",
		Description: "Input, forget, and output gates; the cell state highway; why LSTMs remember.",
		Duration:    "40 min",
		Tags:        []string{"architecture", "lstm"},
		Difficulty:  3,
	},
	{
		ID:          4,
		Title:       "Character-Level Language Models",
		Subtitle:    "Predicting one character at a time",
		Description: "Training an RNN to model text character by character, the classic char-rnn setup.",
		Duration:    "30 min",
		Tags:        []string{"application", "language-models"},
		Difficulty:  2,
	},
	{
		ID:          5,
		Title:       "Backpropagation Through Time",
		Subtitle:    "Unrolling the loop",
		Description: "How gradients flow through an unrolled recurrent network, and truncated BPTT.",
		Duration:    "35 min",
		Tags:        []string{"training", "math"},
		Difficulty:  4,
	},
	{
		ID:          6,
		Title:       "Vanishing and Exploding Gradients",
		Subtitle:    "The trouble with depth in time",
		Description: "Why long-range gradients decay or blow up, and the remedies: clipping, gating, init.",
		Duration:    "30 min",
		Tags:        []string{"training", "math"},
		Difficulty:  4,
	},
	{
		ID:          7,
		Title:       "Gated Recurrent Units",
		Subtitle:    "A leaner gate design",
		Description: "The GRU update and reset gates, and how they compare to LSTM in practice.",
		Duration:    "25 min",
		Tags:        []string{"architecture", "gru"},
		Difficulty:  3,
	},
	{
		ID:          8,
		Title:       "Sampling and Temperature",
		Subtitle:    "Making the model speak",
		Description: "Greedy decoding, temperature scaling, and the character of generated text.",
		Duration:    "20 min",
		Tags:        []string{"application", "generation"},
		Difficulty:  2,
	},
	{
		ID:          9,
		Title:       "Sequence-to-Sequence Models",
		Subtitle:    "Encoder meets decoder",
		Description: "Mapping input sequences to output sequences for translation and summarization.",
		Duration:    "35 min",
		Tags:        []string{"architecture", "seq2seq"},
		Difficulty:  4,
	},
	{
		ID:          10,
		Title:       "Attention and Beyond",
		Subtitle:    "Looking back at the whole input",
		Description: "Attention over encoder states, and how it set the stage for transformers.",
		Duration:    "30 min",
		Tags:        []string{"architecture", "attention"},
		Difficulty:  4,
	},
	{
		ID:          11,
		Title:       "Capstone: Build Your Own char-RNN",
		Subtitle:    "Everything, end to end",
		Description: "Assemble, train, and sample from a character-level RNN on a corpus of your choice.",
		Duration:    "60 min",
		Tags:        []string{"capstone", "application"},
		Difficulty:  5,
	},
}
