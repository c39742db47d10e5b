package repositories

import (
	"context"
	"testing"
	"time"

	"recipe-app/infra"
	"recipe-app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func createUser(t *testing.T, repo IUserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hash", IsActive: true}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "test.random@mail.com")
	assert.NotZero(t, user.ID)

	found, err := repo.FindUser(ctx, "test.random@mail.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	byID, err := repo.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "test.random@mail.com", byID.Email)

	_, err = repo.FindUser(ctx, "missing@mail.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	createUser(t, repo, "dup@mail.com")
	err := repo.CreateUser(context.Background(), &models.User{Email: "dup@mail.com", Password: "hash"})
	assert.ErrorIs(t, err, models.ErrEmailAlreadyExists)
}

func TestTagRepository_FindAllScopedAndOrdered(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "a@mail.com")
	other := createUser(t, users, "b@mail.com")

	for _, name := range []string{"Dessert", "Vegan", "Breakfast"} {
		_, err := tags.Create(ctx, models.Tag{Name: name, UserID: user.ID})
		require.NoError(t, err)
	}
	_, err := tags.Create(ctx, models.Tag{Name: "Fruity", UserID: other.ID})
	require.NoError(t, err)

	found, err := tags.FindAll(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan", "Dessert", "Breakfast"}, tagNames(found))

	found, err = tags.FindAll(ctx, other.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fruity"}, tagNames(found))
}

func TestTagRepository_EqualNamesKeepInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "a@mail.com")
	first, err := tags.Create(ctx, models.Tag{Name: "Same", UserID: user.ID})
	require.NoError(t, err)
	second, err := tags.Create(ctx, models.Tag{Name: "Same", UserID: user.ID})
	require.NoError(t, err)

	found, err := tags.FindAll(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, first.ID, found[0].ID)
	assert.Equal(t, second.ID, found[1].ID)
}

func TestTagRepository_DeleteOnlyOwn(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "a@mail.com")
	other := createUser(t, users, "b@mail.com")
	tag, err := tags.Create(ctx, models.Tag{Name: "Vegan", UserID: user.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, tags.Delete(ctx, tag.ID, other.ID), models.ErrNotFound)
	require.NoError(t, tags.Delete(ctx, tag.ID, user.ID))

	found, err := tags.FindAll(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRecipeRepository_AssociationsAndFilters(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	tags := NewTagRepository(db)
	ingredients := NewIngredientRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "a@mail.com")
	vegan, err := tags.Create(ctx, models.Tag{Name: "Vegan", UserID: user.ID})
	require.NoError(t, err)
	dinner, err := tags.Create(ctx, models.Tag{Name: "Dinner", UserID: user.ID})
	require.NoError(t, err)
	salt, err := ingredients.Create(ctx, models.Ingredient{Name: "Salt", UserID: user.ID})
	require.NoError(t, err)

	curry, err := recipes.Create(ctx, models.Recipe{
		Title:       "Thai vegetable curry",
		TimeMinutes: 30,
		Price:       decimal.RequireFromString("5.50"),
		UserID:      user.ID,
		Tags:        []models.Tag{*vegan},
		Ingredients: []models.Ingredient{*salt},
	})
	require.NoError(t, err)
	assert.Equal(t, "5.50", curry.Price.StringFixed(2))
	assert.Equal(t, []string{"Vegan"}, tagNames(curry.Tags))
	require.Len(t, curry.Ingredients, 1)

	steak, err := recipes.Create(ctx, models.Recipe{
		Title:       "Steak",
		TimeMinutes: 10,
		Price:       decimal.RequireFromString("12.00"),
		UserID:      user.ID,
		Tags:        []models.Tag{*dinner},
	})
	require.NoError(t, err)

	all, err := recipes.FindAll(ctx, user.ID, RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, steak.ID, all[0].ID)

	filtered, err := recipes.FindAll(ctx, user.ID, RecipeFilter{TagIDs: []uint{vegan.ID}})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, curry.ID, filtered[0].ID)

	filtered, err = recipes.FindAll(ctx, user.ID, RecipeFilter{IngredientIDs: []uint{salt.ID}})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, curry.ID, filtered[0].ID)

	assigned, err := tags.FindAll(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan", "Dinner"}, tagNames(assigned))

	require.NoError(t, recipes.Delete(ctx, steak.ID, user.ID))
	assigned, err = tags.FindAll(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan"}, tagNames(assigned))
}

func TestRecipeRepository_UpdateReplacesTags(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	tags := NewTagRepository(db)
	recipes := NewRecipeRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "a@mail.com")
	breakfast, err := tags.Create(ctx, models.Tag{Name: "Breakfast", UserID: user.ID})
	require.NoError(t, err)
	lunch, err := tags.Create(ctx, models.Tag{Name: "Lunch", UserID: user.ID})
	require.NoError(t, err)

	recipe, err := recipes.Create(ctx, models.Recipe{
		Title:       "Eggs",
		TimeMinutes: 5,
		Price:       decimal.RequireFromString("2.00"),
		UserID:      user.ID,
		Tags:        []models.Tag{*breakfast},
	})
	require.NoError(t, err)

	recipe.Title = "Scrambled eggs"
	recipe.Tags = []models.Tag{*lunch}
	updated, err := recipes.Update(ctx, recipe, true, false)
	require.NoError(t, err)
	assert.Equal(t, "Scrambled eggs", updated.Title)
	assert.Equal(t, []string{"Lunch"}, tagNames(updated.Tags))

	updated.Tags = nil
	updated, err = recipes.Update(ctx, updated, true, false)
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)

	require.NoError(t, recipes.UpdateImage(ctx, recipe.ID, user.ID, "uploads/recipe/x.jpg"))
	reloaded, err := recipes.FindById(ctx, recipe.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/recipe/x.jpg", reloaded.Image)

	other := createUser(t, users, "b@mail.com")
	_, err = recipes.FindById(ctx, recipe.ID, other.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, recipes.UpdateImage(ctx, recipe.ID, other.ID, "x"), models.ErrNotFound)
}

func TestTokenRepository_Blacklist(t *testing.T) {
	db, err := infra.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.MigrateTokenDB(db))
	repo := NewTokenRepository(db)
	ctx := context.Background()

	blacklisted, err := repo.IsTokenBlacklisted(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, repo.AddBlacklistedToken(ctx, "tok", 0))
	require.NoError(t, repo.AddBlacklistedToken(ctx, "tok", 0))

	blacklisted, err = repo.IsTokenBlacklisted(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	removed, err := repo.CleanExpiredTokens(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
}

// errorRecorder collects the errors gorm reports for each statement.
type errorRecorder struct {
	errs []error
}

func (r *errorRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *errorRecorder) Info(context.Context, string, ...interface{}) {}
func (r *errorRecorder) Warn(context.Context, string, ...interface{}) {}
func (r *errorRecorder) Error(context.Context, string, ...interface{}) {}
func (r *errorRecorder) Trace(_ context.Context, _ time.Time, _ func() (string, int64), err error) {
	if err != nil {
		r.errs = append(r.errs, err)
	}
}

func TestTokenRepository_UnknownTokenLogsNoError(t *testing.T) {
	db, err := infra.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.MigrateTokenDB(db))

	recorder := &errorRecorder{}
	repo := NewTokenRepository(db.Session(&gorm.Session{Logger: recorder}))

	blacklisted, err := repo.IsTokenBlacklisted(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, blacklisted)
	assert.Empty(t, recorder.errs)
}
