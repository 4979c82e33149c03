package handlers

import (
	"encoding/csv"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// AnalyzeCSV accepts roster and backlog CSV uploads and runs the same analysis
// as the JSON endpoint. Expected parts: developers_file, tasks_file, and an
// optional requirements form field with |-separated skill tags.
func (h *Handler) AnalyzeCSV(c *gin.Context) {
	devsFile, _ := c.FormFile("developers_file")
	tasksFile, _ := c.FormFile("tasks_file")

	if devsFile == nil || tasksFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "developers_file and tasks_file are required"})
		return
	}

	developers, err := parseDevelopersCSV(devsFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse developers file: " + err.Error()})
		return
	}

	tasks, err := parseTasksCSV(tasksFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse tasks file: " + err.Error()})
		return
	}

	var requirements []string
	if raw := c.PostForm("requirements"); raw != "" {
		for _, skill := range strings.Split(raw, "|") {
			if skill = strings.TrimSpace(skill); skill != "" {
				requirements = append(requirements, skill)
			}
		}
	}

	input := models.AnalyzeInput{Developers: developers, Tasks: tasks, Requirements: requirements}
	analysis, _, err := h.analyze(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(developers), len(tasks))
	c.JSON(http.StatusOK, analysis)
}

// headerIndex maps CSV column names to positions.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, "|") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseDevelopersCSV reads columns: id, name, email, velocity, strengths,
// preferred_tasks, commit_frequency, code_quality, collaboration. Strengths
// and preferred_tasks are |-separated.
func parseDevelopersCSV(fh *multipart.FileHeader) ([]models.Developer, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := headerIndex(header)

	field := func(record []string, name string) string {
		if i, ok := cols[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	var developers []models.Developer
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		velocity, _ := strconv.Atoi(field(record, "velocity"))
		commits, _ := strconv.Atoi(field(record, "commit_frequency"))
		quality, _ := strconv.Atoi(field(record, "code_quality"))
		collab, _ := strconv.Atoi(field(record, "collaboration"))

		var prefs []models.TaskType
		for _, t := range splitTags(field(record, "preferred_tasks")) {
			prefs = append(prefs, models.TaskType(t))
		}

		developers = append(developers, models.Developer{
			ID:    field(record, "id"),
			Name:  field(record, "name"),
			Email: field(record, "email"),
			Profile: models.Profile{
				Velocity:        velocity,
				Strengths:       splitTags(field(record, "strengths")),
				PreferredTasks:  prefs,
				CommitFrequency: commits,
				CodeQuality:     quality,
				Collaboration:   collab,
			},
		})
	}
	return developers, nil
}

// parseTasksCSV reads columns: id, title, type, priority, status,
// estimated_effort, assignee_id.
func parseTasksCSV(fh *multipart.FileHeader) ([]models.Task, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := headerIndex(header)

	field := func(record []string, name string) string {
		if i, ok := cols[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	var tasks []models.Task
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		effort, _ := strconv.ParseFloat(field(record, "estimated_effort"), 64)
		tasks = append(tasks, models.Task{
			ID:              field(record, "id"),
			Title:           field(record, "title"),
			Type:            models.TaskType(field(record, "type")),
			Priority:        models.TaskPriority(field(record, "priority")),
			Status:          models.TaskStatus(field(record, "status")),
			EstimatedEffort: effort,
			AssigneeID:      field(record, "assignee_id"),
		})
	}
	return tasks, nil
}
