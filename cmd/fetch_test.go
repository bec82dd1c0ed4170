package cmd

import (
	"path/filepath"
	"testing"

	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialBatches(t *testing.T) {
	courses := []portal.CourseMaterials{
		{Course: "情報処理 演習", Materials: []portal.Material{
			{Title: "Week 1", Attachments: []portal.Attachment{
				{Name: "week1.pdf", URL: "https://portal.test/uprx/files/week1.pdf"},
				{Name: "", URL: "https://cdn.test/syllabus.pdf?v=2"},
			}},
		}},
		{Course: "Calculus II"},
	}

	got := materialBatches("/sync", courses)
	require.Len(t, got, 1)
	assert.Equal(t, "情報処理 演習", got[0].name)
	require.Len(t, got[0].jobs, 2)
	assert.Equal(t, filepath.Join("/sync", "情報処理_演習", "week1.pdf"), got[0].jobs[0].Path)
	assert.Equal(t, filepath.Join("/sync", "情報処理_演習", "syllabus.pdf"), got[0].jobs[1].Path)
	assert.Equal(t, "https://cdn.test/syllabus.pdf?v=2", got[0].jobs[1].URL)
}

func TestNoticeBatch(t *testing.T) {
	assert.Nil(t, noticeBatch("/sync", []portal.Notice{{Title: "no files"}}))

	got := noticeBatch("/sync", []portal.Notice{{
		Title:       "Exam schedule",
		Attachments: []portal.Attachment{{Name: "notice.pdf", URL: "https://portal.test/uprx/attach/notice.pdf"}},
	}})
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join("/sync", "notices", "notice.pdf"), got[0].jobs[0].Path)
}

func TestNoticeBatchSameNamedAttachments(t *testing.T) {
	got := noticeBatch("/sync", []portal.Notice{
		{Title: "Week 1", Attachments: []portal.Attachment{{Name: "資料.pdf", URL: "https://portal.test/uprx/attach/1"}}},
		{Title: "Week 2", Attachments: []portal.Attachment{{Name: "資料.pdf", URL: "https://portal.test/uprx/attach/2"}}},
	})
	require.Len(t, got, 1)
	require.Len(t, got[0].jobs, 2)
	assert.Equal(t, filepath.Join("/sync", "notices", "資料.pdf"), got[0].jobs[0].Path)
	assert.Equal(t, filepath.Join("/sync", "notices", "資料-1.pdf"), got[0].jobs[1].Path)
}
