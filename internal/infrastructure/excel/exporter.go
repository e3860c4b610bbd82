package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// Snapshot agrupa el contenido completo de las tablas para exportar.
type Snapshot struct {
	Products     []*entity.Product
	Locations    []*entity.Location
	Stages       []*entity.Stage
	Substages    []*entity.Substage
	Movements    []*entity.Movement
	Postits      []*entity.Postit
	Recipes      []*entity.Recipe
	RecipeImages []*entity.RecipeImage
	Responsibles []*entity.Responsible
}

// BuildWorkbook genera un libro .xlsx con una hoja por tipo de entidad.
func BuildWorkbook(s Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	type sheet struct {
		name    string
		headers []string
		rows    [][]interface{}
	}

	sheets := []sheet{
		{"Productos", productHeaders, productRows(s.Products)},
		{"Locaciones", locationHeaders, locationRows(s.Locations)},
		{"Etapas", stageHeaders, stageRows(s.Stages)},
		{"Sub-etapas", substageHeaders, substageRows(s.Substages)},
		{"Movimientos", movementHeaders, movementRows(s.Movements)},
		{"Post-it", postitHeaders, postitRows(s.Postits)},
		{"Recetas", recipeHeaders, recipeRows(s.Recipes)},
		{"Imagenes", imageHeaders, imageRows(s.RecipeImages)},
		{"Responsables", responsibleHeaders, responsibleRows(s.Responsibles)},
	}

	for _, sh := range sheets {
		if _, err := f.NewSheet(sh.name); err != nil {
			return nil, fmt.Errorf("crear hoja %s: %w", sh.name, err)
		}
		if err := writeSheet(f, sh.name, sh.headers, sh.rows); err != nil {
			return nil, err
		}
	}

	// Descartar la hoja por defecto y activar la primera
	_ = f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex("Productos")
	if err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func writeSheet(f *excelize.File, name string, headers []string, rows [][]interface{}) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, val := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}

var productHeaders = []string{"id", "name", "unit", "initial_stock", "current_stock", "min_stock", "price", "has_stock", "responsible", "created_at"}

func productRows(products []*entity.Product) [][]interface{} {
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{
			p.ID, p.Name, p.Unit,
			p.InitialStock.InexactFloat64(), p.CurrentStock.InexactFloat64(),
			p.MinStock.InexactFloat64(), p.Price.InexactFloat64(),
			p.HasStock, p.Responsible, formatTime(p.CreatedAt),
		})
	}
	return rows
}

var locationHeaders = []string{"id", "name", "description", "responsible", "created_at"}

func locationRows(locations []*entity.Location) [][]interface{} {
	rows := make([][]interface{}, 0, len(locations))
	for _, l := range locations {
		rows = append(rows, []interface{}{l.ID, l.Name, l.Description, l.Responsible, formatTime(l.CreatedAt)})
	}
	return rows
}

var stageHeaders = []string{"id", "name", "description", "location_id", "expected_duration", "start_time", "end_time", "actual_duration", "status", "responsible", "cycle_name", "is_completed", "parent_stage_id", "created_at"}

func stageRows(stages []*entity.Stage) [][]interface{} {
	rows := make([][]interface{}, 0, len(stages))
	for _, st := range stages {
		rows = append(rows, []interface{}{
			st.ID, st.Name, st.Description, int64OrEmpty(st.LocationID),
			st.ExpectedDuration, timeOrEmpty(st.StartTime), timeOrEmpty(st.EndTime),
			intOrEmpty(st.ActualDuration), st.Status, st.Responsible,
			st.CycleName, st.IsCompleted, int64OrEmpty(st.ParentStageID), formatTime(st.CreatedAt),
		})
	}
	return rows
}

var substageHeaders = []string{"id", "name", "description", "stage_id", "expected_duration", "start_time", "end_time", "actual_duration", "status", "responsible", "created_at"}

func substageRows(substages []*entity.Substage) [][]interface{} {
	rows := make([][]interface{}, 0, len(substages))
	for _, ss := range substages {
		rows = append(rows, []interface{}{
			ss.ID, ss.Name, ss.Description, ss.StageID,
			ss.ExpectedDuration, timeOrEmpty(ss.StartTime), timeOrEmpty(ss.EndTime),
			intOrEmpty(ss.ActualDuration), ss.Status, ss.Responsible, formatTime(ss.CreatedAt),
		})
	}
	return rows
}

var movementHeaders = []string{"id", "date", "type", "products", "stage_id", "substage_id", "responsible", "location", "observations", "cost"}

func movementRows(movements []*entity.Movement) [][]interface{} {
	rows := make([][]interface{}, 0, len(movements))
	for _, m := range movements {
		items := make([]string, 0, len(m.Items))
		for _, it := range m.Items {
			items = append(items, fmt.Sprintf("%d: %s %s", it.ProductID, it.Quantity.String(), it.Unit))
		}
		rows = append(rows, []interface{}{
			m.ID, formatTime(m.Date), m.Type, strings.Join(items, "; "),
			int64OrEmpty(m.StageID), int64OrEmpty(m.SubstageID),
			m.Responsible, m.Location, m.Observations, m.Cost.InexactFloat64(),
		})
	}
	return rows
}

var postitHeaders = []string{"id", "title", "content", "color", "created_at", "updated_at"}

func postitRows(postits []*entity.Postit) [][]interface{} {
	rows := make([][]interface{}, 0, len(postits))
	for _, p := range postits {
		rows = append(rows, []interface{}{p.ID, p.Title, p.Content, p.Color, formatTime(p.CreatedAt), formatTime(p.UpdatedAt)})
	}
	return rows
}

var recipeHeaders = []string{"id", "name", "filename", "file_type", "file_path", "uploaded_at"}

func recipeRows(recipes []*entity.Recipe) [][]interface{} {
	rows := make([][]interface{}, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []interface{}{r.ID, r.Name, r.Filename, r.FileType, r.FilePath, formatTime(r.UploadedAt)})
	}
	return rows
}

var imageHeaders = []string{"id", "title", "filename", "file_path", "comment", "uploaded_at"}

func imageRows(images []*entity.RecipeImage) [][]interface{} {
	rows := make([][]interface{}, 0, len(images))
	for _, img := range images {
		rows = append(rows, []interface{}{img.ID, img.Title, img.Filename, img.FilePath, img.Comment, formatTime(img.UploadedAt)})
	}
	return rows
}

var responsibleHeaders = []string{"id", "name", "role", "location_id", "color", "created_at"}

func responsibleRows(responsibles []*entity.Responsible) [][]interface{} {
	rows := make([][]interface{}, 0, len(responsibles))
	for _, r := range responsibles {
		rows = append(rows, []interface{}{r.ID, r.Name, r.Role, r.LocationID, r.Color, formatTime(r.CreatedAt)})
	}
	return rows
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func timeOrEmpty(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func intOrEmpty(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}

func int64OrEmpty(n *int64) interface{} {
	if n == nil {
		return ""
	}
	return *n
}
