package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/sleep-journal/internal/domain"
	"github.com/blaisecz/sleep-journal/internal/stats"
)

const (
	// PromptWindow is the number of recent records sent to the model.
	PromptWindow = 7

	// SleepDataPlaceholder marks where formatted records go in a template.
	SleepDataPlaceholder = "{{sleep_data}}"

	noNote = "Không có"
)

// DefaultPromptTemplate asks for an analysis, tomorrow's schedule and advice,
// in Vietnamese and within 100-150 words.
const DefaultPromptTemplate = `Dựa trên dữ liệu giấc ngủ của người dùng trong 7 ngày gần nhất:

{{sleep_data}}

Hãy đưa ra gợi ý về thời gian ngủ cho ngày hôm sau. Gợi ý nên:
1. Phân tích chất lượng giấc ngủ hiện tại
2. Đề xuất thời gian ngủ và thức dậy phù hợp
3. Đưa ra lời khuyên để cải thiện giấc ngủ
4. Trả lời bằng tiếng Việt, ngắn gọn và dễ hiểu

Trả lời trong khoảng 100-150 từ.`

// PromptBuilder renders recent sleep records into a recommendation prompt.
type PromptBuilder struct {
	template string
	loc      *time.Location
}

// NewPromptBuilder uses DefaultPromptTemplate when template is blank and
// renders dates and clock times in loc (UTC when nil).
func NewPromptBuilder(template string, loc *time.Location) *PromptBuilder {
	if strings.TrimSpace(template) == "" {
		template = DefaultPromptTemplate
	}
	if loc == nil {
		loc = time.UTC
	}
	return &PromptBuilder{template: template, loc: loc}
}

// Build formats at most maxRecords records (PromptWindow when non-positive)
// in the given newest-first order and places them into the template. A
// template without the placeholder gets the data appended.
func (b *PromptBuilder) Build(records []domain.SleepRecord, maxRecords int) string {
	if maxRecords <= 0 {
		maxRecords = PromptWindow
	}
	if len(records) > maxRecords {
		records = records[:maxRecords]
	}

	blocks := make([]string, 0, len(records))
	for _, record := range records {
		blocks = append(blocks, b.formatRecord(record))
	}
	data := strings.Join(blocks, "\n\n")

	if !strings.Contains(b.template, SleepDataPlaceholder) {
		return strings.TrimRight(b.template, "\n") + "\n\n" + data
	}
	return strings.ReplaceAll(b.template, SleepDataPlaceholder, data)
}

func (b *PromptBuilder) formatRecord(record domain.SleepRecord) string {
	note := noNote
	if record.Notes != nil && strings.TrimSpace(*record.Notes) != "" {
		note = strings.TrimSpace(*record.Notes)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Ngày: %s\n", record.CreatedAt.In(b.loc).Format("02/01/2006"))
	fmt.Fprintf(&sb, "Giờ ngủ: %s\n", record.SleepTime.In(b.loc).Format("15:04"))
	fmt.Fprintf(&sb, "Giờ thức: %s\n", record.WakeTime.In(b.loc).Format("15:04"))
	fmt.Fprintf(&sb, "Thời gian ngủ: %dh\n", stats.RecordDuration(record).Hours)
	fmt.Fprintf(&sb, "Chất lượng: %d/10\n", record.SleepQuality)
	fmt.Fprintf(&sb, "Ghi chú: %s", note)
	return sb.String()
}
