package embedding

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"os"
	"strings"
	"sync"
)

const (
	vocabBuckets       = 64
	hiddenDim          = 32
	VectorDim          = 16
	sentimentHiddenDim = 8
)

// The weight blob is a header-free sequence of little-endian float32s laid
// out as two feed-forward topologies back to back: the text encoder
// (vocabBuckets x hiddenDim, then hiddenDim x VectorDim) followed by the
// sentiment head (VectorDim x sentimentHiddenDim, then sentimentHiddenDim x 1).
const expectedWeightCount = vocabBuckets*hiddenDim +
	hiddenDim*VectorDim +
	VectorDim*sentimentHiddenDim +
	sentimentHiddenDim

// Model owns the optional text-embedding resource. Initialization is lazy
// and happens at most once; a failed load leaves the model permanently in
// heuristic-only mode rather than blocking scoring.
type Model interface {
	// Embed returns a VectorDim-length vector representing the aggregate
	// meaning of texts.
	Embed(texts []string) ([]float64, error)
	// Sentiment maps an embedding vector to a [0,100] score. Advisory only -
	// the keyword heuristic stays authoritative for reported scores.
	Sentiment(vector []float64) (float64, error)
	Ready() bool
	Close()
}

type modelHandler struct {
	weightsPath string

	initOnce sync.Once
	initErr  error

	mu              sync.RWMutex
	closed          bool
	encoderInput    []float32 // vocabBuckets x hiddenDim
	encoderOutput   []float32 // hiddenDim x VectorDim
	sentimentHidden []float32 // VectorDim x sentimentHiddenDim
	sentimentOutput []float32 // sentimentHiddenDim x 1
}

func NewModel(weightsPath string) Model {
	return &modelHandler{
		weightsPath: weightsPath,
	}
}

func (m *modelHandler) init() error {
	m.initOnce.Do(func() {
		m.initErr = m.loadWeights()
	})
	return m.initErr
}

func (m *modelHandler) loadWeights() error {
	if m.weightsPath == "" {
		return fmt.Errorf("no model weights configured")
	}
	raw, err := os.ReadFile(m.weightsPath)
	if err != nil {
		return fmt.Errorf("failed to read model weights: %w", err)
	}
	if len(raw)%4 != 0 {
		return fmt.Errorf("weight blob length %d is not a multiple of 4", len(raw))
	}
	count := len(raw) / 4
	if count != expectedWeightCount {
		return fmt.Errorf("weight blob holds %d floats, expected %d", count, expectedWeightCount)
	}

	weights := make([]float32, count)
	for i := range weights {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		weights[i] = math.Float32frombits(bits)
	}

	offset := 0
	next := func(n int) []float32 {
		section := weights[offset : offset+n]
		offset += n
		return section
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.encoderInput = next(vocabBuckets * hiddenDim)
	m.encoderOutput = next(hiddenDim * VectorDim)
	m.sentimentHidden = next(VectorDim * sentimentHiddenDim)
	m.sentimentOutput = next(sentimentHiddenDim)

	return nil
}

func (m *modelHandler) Ready() bool {
	if err := m.init(); err != nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.closed
}

func (m *modelHandler) Embed(texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("cannot embed empty text list")
	}
	if err := m.init(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, fmt.Errorf("model has been closed")
	}

	pooled := make([]float64, VectorDim)
	for _, text := range texts {
		vector := m.encode(text)
		for i, v := range vector {
			pooled[i] += v
		}
	}
	for i := range pooled {
		pooled[i] /= float64(len(texts))
	}

	return l2Normalize(pooled), nil
}

func (m *modelHandler) encode(text string) []float64 {
	bag := make([]float64, vocabBuckets)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		bag[h.Sum32()%vocabBuckets]++
	}

	hidden := make([]float64, hiddenDim)
	for j := 0; j < hiddenDim; j++ {
		var sum float64
		for i := 0; i < vocabBuckets; i++ {
			sum += bag[i] * float64(m.encoderInput[i*hiddenDim+j])
		}
		hidden[j] = relu(sum)
	}

	vector := make([]float64, VectorDim)
	for j := 0; j < VectorDim; j++ {
		var sum float64
		for i := 0; i < hiddenDim; i++ {
			sum += hidden[i] * float64(m.encoderOutput[i*VectorDim+j])
		}
		vector[j] = sum
	}

	return vector
}

func (m *modelHandler) Sentiment(vector []float64) (float64, error) {
	if len(vector) != VectorDim {
		return 0, fmt.Errorf("expected vector of length %d, got %d", VectorDim, len(vector))
	}
	if err := m.init(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, fmt.Errorf("model has been closed")
	}

	hidden := make([]float64, sentimentHiddenDim)
	for j := 0; j < sentimentHiddenDim; j++ {
		var sum float64
		for i := 0; i < VectorDim; i++ {
			sum += vector[i] * float64(m.sentimentHidden[i*sentimentHiddenDim+j])
		}
		hidden[j] = relu(sum)
	}

	var out float64
	for i := 0; i < sentimentHiddenDim; i++ {
		out += hidden[i] * float64(m.sentimentOutput[i])
	}

	// squash to [0,100]
	return 100 / (1 + math.Exp(-out)), nil
}

func (m *modelHandler) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.encoderInput = nil
	m.encoderOutput = nil
	m.sentimentHidden = nil
	m.sentimentOutput = nil
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return ' '
	}, text)
	return strings.Fields(cleaned)
}

func relu(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func l2Normalize(vector []float64) []float64 {
	var norm float64
	for _, v := range vector {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vector
	}
	for i := range vector {
		vector[i] /= norm
	}
	return vector
}
