package fitbit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures the method, path, and query of the last request
// and answers with an empty JSON object.
func recordingServer(t *testing.T) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

type recordedRequest struct {
	method string
	path   string
	query  url.Values
}

func TestActivitiesByDate(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	_, err := c.ActivitiesByDate(context.Background(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/1/user/-/activities/date/2024-03-15.json", rec.path)
}

func TestActivitiesByDateZeroDate(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	_, err := c.ActivitiesByDate(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "/1/user/-/activities/date/today.json", rec.path)
}

func TestActivitiesLogListQuery(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	params := &ActivitiesLogListParams{
		BeforeDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := c.ActivitiesLogList(context.Background(), "desc", 0, 20, params)
	require.NoError(t, err)

	assert.Equal(t, "/1/user/-/activities/list.json", rec.path)
	assert.Equal(t, "desc", rec.query.Get("sort"))
	assert.Equal(t, "0", rec.query.Get("offset"))
	assert.Equal(t, "20", rec.query.Get("limit"))
	assert.Equal(t, "2024-06-01", rec.query.Get("beforeDate"))
	assert.False(t, rec.query.Has("afterDate"))
}

func TestActivitiesLogListNilParams(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	_, err := c.ActivitiesLogList(context.Background(), "asc", 0, 10, nil)
	require.NoError(t, err)
	assert.False(t, rec.query.Has("beforeDate"))
	assert.False(t, rec.query.Has("afterDate"))
}

func TestDeleteActivitiesLog(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	_, err := c.DeleteActivitiesLog(context.Background(), 987654)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/1/user/-/activities/987654.json", rec.path)
}

func TestAddFoodsLog(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeNutrition)

	params := &AddFoodsLogParams{Favorite: true, Calories: 250}
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	_, err := c.AddFoodsLog(context.Background(), 12345, 1, 304, 2.5, date, params)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/1/user/-/foods/log.json", rec.path)
	assert.Equal(t, "12345", rec.query.Get("foodId"))
	assert.Equal(t, "1", rec.query.Get("mealTypeId"))
	assert.Equal(t, "304", rec.query.Get("unitId"))
	assert.Equal(t, "2.5", rec.query.Get("amount"))
	assert.Equal(t, "2024-01-02", rec.query.Get("date"))
	assert.Equal(t, "true", rec.query.Get("favorite"))
	assert.Equal(t, "250", rec.query.Get("calories"))
	assert.False(t, rec.query.Has("foodName"))
}

func TestActivitiesLog(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	_, err := c.ActivitiesLog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/1/user/-/activities.json", rec.path)
}

func TestActivitiesTrackerResourceByDatePeriod(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	_, err := c.ActivitiesTrackerResourceByDatePeriod(context.Background(), "steps", date, "7d")
	require.NoError(t, err)

	assert.Equal(t, "/1/user/-/activities/tracker/steps/date/2024-05-20/7d.json", rec.path)
}

func TestActivitiesResourceByDateTimeSeriesIntraday(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	_, err := c.ActivitiesResourceByDateTimeSeriesIntraday(context.Background(), "steps", date, "15min", "08:00", "12:00")
	require.NoError(t, err)

	assert.Equal(t, "/1/user/-/activities/steps/date/2024-05-20/1d/15min/time/08:00/12:00.json", rec.path)
}

func TestActivitiesResourceByDateRangeTimeSeriesIntraday(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity)

	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)
	_, err := c.ActivitiesResourceByDateRangeTimeSeriesIntraday(context.Background(), "calories", date, end, "1min", "06:30", "07:00")
	require.NoError(t, err)

	assert.Equal(t, "/1/user/-/activities/calories/date/2024-05-20/2024-05-21/1min/time/06:30/07:00.json", rec.path)
}

func TestFoodsByDateRange(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeNutrition)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	_, err := c.FoodsByDateRange(context.Background(), "caloriesIn", base, end)
	require.NoError(t, err)

	assert.Equal(t, "/1/user/-/foods/log/caloriesIn/date/2024-03-01/2024-03-31.json", rec.path)
}

func TestAddMeal(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeNutrition)

	_, err := c.AddMeal(context.Background(), "Breakfast", "Oatmeal and coffee", 12345, 304, 1.5)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/1/user/-/meals.json", rec.path)
	assert.Equal(t, "Breakfast", rec.query.Get("name"))
	assert.Equal(t, "Oatmeal and coffee", rec.query.Get("Description"))
	assert.Equal(t, "12345", rec.query.Get("foodId"))
	assert.Equal(t, "304", rec.query.Get("unitId"))
	assert.Equal(t, "1.5", rec.query.Get("amount"))
}

func TestUpdateMeal(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeNutrition)

	_, err := c.UpdateMeal(context.Background(), 777, "Lunch", "Salad", 54321, 226, 2)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/1/user/-/meals/777.json", rec.path)
	assert.Equal(t, "Lunch", rec.query.Get("name"))
	assert.Equal(t, "2", rec.query.Get("amount"))
}

func TestDeleteMeal(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeNutrition)

	_, err := c.DeleteMeal(context.Background(), 777)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/1/user/-/meals/777.json", rec.path)
}

func TestAddFoods(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeNutrition)

	params := &AddFoodsParams{FormType: "DRY"}
	_, err := c.AddFoods(context.Background(), "Granola", 304, 0.5, 210, params)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/1/user/-/foods.json", rec.path)
	assert.Equal(t, "Granola", rec.query.Get("name"))
	assert.Equal(t, "304", rec.query.Get("defaultFoodMeasurementUnitId"))
	assert.Equal(t, "0.5", rec.query.Get("defaultServingSize"))
	assert.Equal(t, "210", rec.query.Get("calories"))
	assert.Equal(t, "DRY", rec.query.Get("formType"))
	assert.False(t, rec.query.Has("description"))
}

func TestDeleteFoods(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeNutrition)

	_, err := c.DeleteFoods(context.Background(), 98765)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/1/user/-/foods/98765.json", rec.path)
}

func TestRespondFriendsInvitation(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeSocial)

	_, err := c.RespondFriendsInvitation(context.Background(), "ABC123", true)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/1.1/user/-/friends/invitations/ABC123", rec.path)
	assert.Equal(t, "true", rec.query.Get("accept"))
}

func TestHeartByDateRangeTimestampIntraday(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeHeartrate)

	date := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)
	_, err := c.HeartByDateRangeTimestampIntraday(context.Background(), date, end, "1sec", "13:00", "13:30")
	require.NoError(t, err)

	assert.Equal(t, "/1/user/-/activities/heart/date/2024-07-04/2024-07-05/1sec/time/13:00/13:30.json", rec.path)
}

func TestHeartByDateIntraday(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeHeartrate)

	date := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	_, err := c.HeartByDateIntraday(context.Background(), date, "1min")
	require.NoError(t, err)

	assert.Equal(t, "/1/user/-/activities/heart/date/2024-07-04/1d/1min.json", rec.path)
}

func TestAddAlarms(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeSettings)

	_, err := c.AddAlarms(context.Background(), 42, "07:15-08:00", true, false, "MONDAY,TUESDAY")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/1/user/-/devices/tracker/42/alarms.json", rec.path)
	assert.Equal(t, "07:15-08:00", rec.query.Get("time"))
	assert.Equal(t, "true", rec.query.Get("enabled"))
	assert.Equal(t, "false", rec.query.Get("recurring"))
	assert.Equal(t, "MONDAY,TUESDAY", rec.query.Get("weekDays"))
}

func TestAddSubscriptions(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeActivity, ScopeNutrition, ScopeSleep, ScopeWeight)

	_, err := c.AddSubscriptions(context.Background(), "activities", "sub-320")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/1/user/-/activities/apiSubscriptions/sub-320.json", rec.path)
}

func TestSleepByDateRange(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeSleep)

	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)
	_, err := c.SleepByDateRange(context.Background(), base, end)
	require.NoError(t, err)

	assert.Equal(t, "/1.2/user/-/sleep/date/2024-02-01/2024-02-07.json", rec.path)
}

func TestProfile(t *testing.T) {
	srv, rec := recordingServer(t)
	c := newTestClient(t, srv, ScopeProfile)

	_, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/1/user/-/profile.json", rec.path)
}
