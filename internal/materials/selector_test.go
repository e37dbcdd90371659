package materials

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonho/tutorkit/internal/llm"
)

func energyItem() Item {
	return Item{
		Material: Material{Title: "에너지 보존 법칙", Type: "link", URL: "https://example.com/energy"},
		Extracted: Extraction{
			Success:  true,
			Text:     "에너지는 형태를 바꿀 뿐 총량은 보존된다. 운동 에너지와 위치 에너지가 서로 전환된다.",
			Keywords: []string{"에너지", "보존"},
			Chunks: []string{
				"마찰이 없으면 역학적 에너지는 보존된다.",
				"식물은 빛 에너지를 화학 에너지로 바꾼다.",
				"조선 시대의 농업 기술은 크게 발전했다.",
			},
		},
	}
}

func weatherItem() Item {
	return Item{
		Material: Material{Title: "날씨와 구름", Type: "file", FileName: "weather.pdf"},
		Extracted: Extraction{
			Success:  true,
			Text:     "구름은 수증기가 응결하여 생긴다.",
			Keywords: []string{"구름", "수증기"},
			Chunks:   []string{"구름은 수증기가 응결하여 생긴다."},
		},
	}
}

func scoreResponse(score float64) llm.MockResponse {
	content, _ := json.Marshal(map[string]any{"score": score, "reason": "테스트"})
	return llm.MockResponse{Content: content}
}

func TestRankSortsByModelScore(t *testing.T) {
	mock := llm.NewMockProvider(scoreResponse(0.4), scoreResponse(0.9))
	s := NewSelector(mock, nil)

	got := s.Rank(context.Background(), []Item{energyItem(), weatherItem()},
		"에너지가 뭐예요?", RankContext{Subject: "science"})

	require.Len(t, got, 2)
	assert.Equal(t, "날씨와 구름", got[0].Material.Title)
	assert.InDelta(t, 0.9, got[0].Score, 1e-9)
	assert.Equal(t, "에너지 보존 법칙", got[1].Material.Title)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRankFiltersLowScores(t *testing.T) {
	mock := llm.NewMockProvider(scoreResponse(0.2), scoreResponse(0.8))
	s := NewSelector(mock, nil)

	got := s.Rank(context.Background(), []Item{energyItem(), weatherItem()},
		"에너지가 뭐예요?", RankContext{})

	require.Len(t, got, 1)
	assert.Equal(t, "날씨와 구름", got[0].Material.Title)
}

func TestRankSkipsFailedExtractions(t *testing.T) {
	mock := llm.NewMockProvider(scoreResponse(0.9))
	s := NewSelector(mock, nil)

	broken := Item{
		Material:  Material{Title: "깨진 자료"},
		Extracted: Extraction{Success: false, Error: "fetch failed"},
	}

	got := s.Rank(context.Background(), []Item{broken, energyItem()},
		"에너지가 뭐예요?", RankContext{})

	require.Len(t, got, 1)
	assert.Equal(t, "에너지 보존 법칙", got[0].Material.Title)
	// The failed extraction never reaches the model.
	assert.Equal(t, 1, mock.CallCount())
}

func TestRankFallsBackWhenModelUnavailable(t *testing.T) {
	// No canned responses: every Generate call fails. Ranking must still
	// surface the material whose title overlaps the question.
	mock := llm.NewMockProvider()
	s := NewSelector(mock, nil)

	got := s.Rank(context.Background(), []Item{energyItem(), weatherItem()},
		"에너지 보존이 뭐예요?", RankContext{})

	require.NotEmpty(t, got)
	assert.Equal(t, "에너지 보존 법칙", got[0].Material.Title)
	assert.Greater(t, got[0].Score, relevanceThreshold)
}

func TestRankClampsOutOfRangeScores(t *testing.T) {
	mock := llm.NewMockProvider(scoreResponse(1.7))
	s := NewSelector(mock, nil)

	got := s.Rank(context.Background(), []Item{energyItem()}, "에너지", RankContext{})

	require.Len(t, got, 1)
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
}

func TestFallbackScore(t *testing.T) {
	tests := []struct {
		name     string
		question string
		item     Item
		want     float64
	}{
		{
			name:     "title match weighs double",
			question: "에너지",
			item:     energyItem(),
			want:     1.0, // 2 / (1*2)
		},
		{
			name:     "body match weighs single",
			question: "마찰",
			item: Item{
				Material:  Material{Title: "읽기자료"},
				Extracted: Extraction{Success: true, Text: "마찰이 운동을 방해한다."},
			},
			want: 0.5, // 1 / (1*2)
		},
		{
			name:     "no terms at all",
			question: "?",
			item:     energyItem(),
			want:     0.1,
		},
		{
			name:     "no overlap",
			question: "조선의 역사가 궁금해요",
			item:     weatherItem(),
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fallbackScore(tt.question, tt.item), 1e-9)
		})
	}
}

func TestSelectChunks(t *testing.T) {
	item := energyItem()

	chunks := selectChunks(item.Extracted.Chunks, "에너지가 보존되나요?", item.Extracted.Keywords)

	// The unrelated history chunk scores zero and is dropped.
	require.Len(t, chunks, 2)
	assert.Equal(t, "마찰이 없으면 역학적 에너지는 보존된다.", chunks[0])
	assert.Equal(t, "식물은 빛 에너지를 화학 에너지로 바꾼다.", chunks[1])
}

func TestSelectChunksCapsAtThree(t *testing.T) {
	chunks := []string{
		"에너지 하나", "에너지 둘", "에너지 셋", "에너지 넷",
	}
	got := selectChunks(chunks, "에너지", nil)
	assert.Len(t, got, 3)
}

func TestRelevancePromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(scoreResponse(0.9))
	s := NewSelector(mock, nil)

	s.Rank(context.Background(), []Item{energyItem()}, "에너지가 뭐예요?",
		RankContext{Subject: "science", ResponseType: "CONCEPT_QUESTION", GradeLevel: "초등 5학년"})

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, relevanceSchema, req.Schema)
	assert.InDelta(t, 0.1, req.Temperature, 1e-9)

	prompt := req.Messages[0].Content
	assert.Contains(t, prompt, "과목: science")
	assert.Contains(t, prompt, "학습 단계: CONCEPT_QUESTION")
	assert.Contains(t, prompt, "학년: 초등 5학년")
	assert.Contains(t, prompt, "에너지 보존 법칙")
}
