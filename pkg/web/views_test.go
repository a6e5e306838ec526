package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cropbook/database/dbtest"
	"cropbook/entities"
	cropRepoImp "cropbook/pkg/crop/repositoryImp"
	cropSvcImp "cropbook/pkg/crop/serviceImp"
	farmerRepoImp "cropbook/pkg/farmer/repositoryImp"
	farmerSvcImp "cropbook/pkg/farmer/serviceImp"
	prodRepoImp "cropbook/pkg/production/repositoryImp"
	prodSvcImp "cropbook/pkg/production/serviceImp"
	reportSvcImp "cropbook/pkg/report/serviceImp"
)

type app struct {
	e  *echo.Echo
	db *gorm.DB
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := dbtest.New(t)
	fRepo, cRepo, pRepo := farmerRepoImp.New(db), cropRepoImp.New(db), prodRepoImp.New(db)

	r, err := NewRenderer()
	require.NoError(t, err)
	e := echo.New()
	e.Renderer = r
	NewViewCtrl(
		farmerSvcImp.NewFarmerService(fRepo),
		cropSvcImp.NewCropService(cRepo),
		prodSvcImp.NewProductionService(pRepo, fRepo, cRepo),
		reportSvcImp.NewReportService(fRepo, pRepo),
		2025,
		zap.NewNop(),
	).Register(e)
	return &app{e: e, db: db}
}

func (a *app) get(t *testing.T, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec, parse(t, rec)
}

func (a *app) post(t *testing.T, target string, form url.Values) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec, parse(t, rec)
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

type shown struct{ level, msg string }

func notices(doc *goquery.Document) []shown {
	var out []shown
	doc.Find(".notice").Each(func(_ int, s *goquery.Selection) {
		lvl, _ := s.Attr("data-level")
		out = append(out, shown{lvl, strings.TrimSpace(s.Text())})
	})
	return out
}

func TestIndexRedirects(t *testing.T) {
	a := newApp(t)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/farmers/new", rec.Header().Get(echo.HeaderLocation))
}

func TestNavigationListsFourViews(t *testing.T) {
	_, doc := newApp(t).get(t, "/crops/new")

	var labels []string
	doc.Find("#nav a").Each(func(_ int, s *goquery.Selection) { labels = append(labels, s.Text()) })
	assert.Equal(t, []string{"Add Farmer", "Add Crop", "Record Production", "View Report"}, labels)
	assert.Equal(t, "Add Crop", doc.Find("#nav a.active").Text())
}

func TestAddFarmer(t *testing.T) {
	a := newApp(t)

	rec, doc := a.post(t, "/farmers", url.Values{"name": {"Asha"}, "village": {"Palam"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []shown{{"success", "Farmer 'Asha' from 'Palam' added successfully!"}}, notices(doc))
	val, _ := doc.Find(`input[name="name"]`).Attr("value")
	assert.Empty(t, val, "form cleared after success")

	var n int64
	require.NoError(t, a.db.Model(&entities.Farmer{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestAddFarmerBlankKeepsValues(t *testing.T) {
	a := newApp(t)

	_, doc := a.post(t, "/farmers", url.Values{"name": {"Asha"}, "village": {""}})
	assert.Equal(t, []shown{{"warning", "Please enter both farmer name and village."}}, notices(doc))
	val, _ := doc.Find(`input[name="name"]`).Attr("value")
	assert.Equal(t, "Asha", val)

	var n int64
	require.NoError(t, a.db.Model(&entities.Farmer{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAddCropDuplicateWarns(t *testing.T) {
	a := newApp(t)

	_, doc := a.post(t, "/crops", url.Values{"name": {"Wheat"}})
	assert.Equal(t, []shown{{"success", "Crop 'Wheat' added successfully!"}}, notices(doc))

	rec, doc := a.post(t, "/crops", url.Values{"name": {"Wheat"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []shown{{"warning", "Crop 'Wheat' already exists in the database."}}, notices(doc))

	_, doc = a.post(t, "/crops", url.Values{"name": {" "}})
	assert.Equal(t, []shown{{"warning", "Please enter crop name."}}, notices(doc))
}

func TestRecordProductionBlockedWithoutCrop(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.db.Create(&entities.Farmer{Name: "Ravi", Village: "Sitapur"}).Error)

	_, doc := a.get(t, "/production/new")
	assert.Equal(t, 0, doc.Find("#record_production_form").Length())
	got := notices(doc)
	require.Len(t, got, 2)
	assert.Equal(t, "warning", got[0].level)
	assert.Contains(t, got[1].msg, "'Add Farmer' and 'Add Crop'")

	_, doc = a.post(t, "/production", url.Values{"farmer_id": {"1"}, "crop_id": {"1"}, "year": {"2024"}, "quantity": {"3"}})
	assert.Equal(t, 0, doc.Find("#record_production_form").Length())

	var n int64
	require.NoError(t, a.db.Model(&entities.Production{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRecordProductionForm(t *testing.T) {
	a := newApp(t)
	ravi := entities.Farmer{Name: "Ravi", Village: "Sitapur"}
	rice := entities.Crop{Name: "Rice"}
	require.NoError(t, a.db.Create(&ravi).Error)
	require.NoError(t, a.db.Create(&rice).Error)

	_, doc := a.get(t, "/production/new")
	assert.Equal(t, "Ravi (Sitapur)", doc.Find(`select[name="farmer_id"] option`).First().Text())
	year, _ := doc.Find(`input[name="year"]`).Attr("value")
	assert.Equal(t, "2025", year)
	qty, _ := doc.Find(`input[name="quantity"]`).Attr("value")
	assert.Equal(t, "0.00", qty)
	min, _ := doc.Find(`input[name="year"]`).Attr("min")
	assert.Equal(t, "1900", min)

	_, doc = a.post(t, "/production", url.Values{
		"farmer_id": {fmt.Sprint(ravi.ID)}, "crop_id": {fmt.Sprint(rice.ID)}, "year": {"2023"}, "quantity": {"12.5"},
	})
	assert.Equal(t, []shown{{"success", "Production data recorded successfully!"}}, notices(doc))

	_, doc = a.post(t, "/production", url.Values{
		"farmer_id": {fmt.Sprint(ravi.ID)}, "crop_id": {fmt.Sprint(rice.ID)}, "year": {"2300"}, "quantity": {"1"},
	})
	assert.Equal(t, []shown{{"warning", "Year must be between 1900 and 2100."}}, notices(doc))
	year, _ = doc.Find(`input[name="year"]`).Attr("value")
	assert.Equal(t, "2300", year, "submitted values are kept")

	_, doc = a.post(t, "/production", url.Values{
		"farmer_id": {fmt.Sprint(ravi.ID)}, "crop_id": {fmt.Sprint(rice.ID)}, "year": {"2024"}, "quantity": {"lots"},
	})
	assert.Equal(t, "warning", notices(doc)[0].level)

	var n int64
	require.NoError(t, a.db.Model(&entities.Production{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestReportWithoutFarmers(t *testing.T) {
	_, doc := newApp(t).get(t, "/report")
	assert.Equal(t, 0, doc.Find("#report_form").Length())
	assert.Equal(t, []shown{{"warning", "No farmers found. Please add farmers using the 'Add Farmer' page."}}, notices(doc))
}

func TestReport(t *testing.T) {
	a := newApp(t)
	ravi := entities.Farmer{Name: "Ravi", Village: "Sitapur"}
	asha := entities.Farmer{Name: "Asha", Village: "Palam"}
	rice := entities.Crop{Name: "Rice"}
	require.NoError(t, a.db.Create(&ravi).Error)
	require.NoError(t, a.db.Create(&asha).Error)
	require.NoError(t, a.db.Create(&rice).Error)
	require.NoError(t, a.db.Create(&entities.Production{FarmerID: ravi.ID, CropID: rice.ID, Year: 2023, Quantity: 12.5}).Error)
	require.NoError(t, a.db.Create(&entities.Production{FarmerID: ravi.ID, CropID: rice.ID, Year: 2024, Quantity: 15.0}).Error)

	// selector only until the report is requested
	_, doc := a.get(t, "/report")
	assert.Equal(t, 1, doc.Find("#report_form").Length())
	assert.Equal(t, 0, doc.Find("#report").Length())
	assert.Equal(t, "Asha (Palam)", doc.Find(`select[name="farmer_id"] option[selected]`).Text())

	_, doc = a.get(t, fmt.Sprintf("/report?farmer_id=%d&show=1", ravi.ID))
	assert.Equal(t, "Production Report for Ravi (Sitapur)", doc.Find("h3").Text())

	var rows [][]string
	doc.Find("#report tbody tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) { cells = append(cells, td.Text()) })
		rows = append(rows, cells)
	})
	assert.Equal(t, [][]string{
		{"1", "Rice", "2024", "15.00"},
		{"2", "Rice", "2023", "12.50"},
	}, rows)
	href, _ := doc.Find("#export").Attr("href")
	assert.Equal(t, fmt.Sprintf("/api/v1/farmers/%d/report.xlsx", ravi.ID), href)

	_, doc = a.get(t, fmt.Sprintf("/report?farmer_id=%d&show=1", asha.ID))
	assert.Equal(t, 0, doc.Find("#report").Length())
	assert.Equal(t, []shown{{"info", "No production data found for this farmer."}}, notices(doc))
}

func TestParseRecordForm(t *testing.T) {
	in, err := parseRecordForm(map[string]string{"farmer_id": "3", "crop_id": "4", "year": " 2024 ", "quantity": "0.25"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, in.FarmerID)
	assert.EqualValues(t, 4, in.CropID)
	assert.Equal(t, 2024, in.Year)
	assert.Equal(t, 0.25, in.Quantity)

	_, err = parseRecordForm(map[string]string{"crop_id": "4", "year": "2024", "quantity": "1"})
	assert.EqualError(t, err, "Please select a farmer.")
}
