package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/colonel51/KardesLastik/internal/api"
)

// StoreTestSuite provides a test suite for the sqlite session store
type StoreTestSuite struct {
	suite.Suite
	db *DB
}

// SetupTest runs before each test
func (suite *StoreTestSuite) SetupTest() {
	db, err := NewDB(":memory:")
	require.NoError(suite.T(), err, "failed to create test database")
	suite.db = db
}

// TearDownTest runs after each test
func (suite *StoreTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *StoreTestSuite) newSession() *Session {
	return &Session{
		Token:        NewToken(),
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         api.User{ID: 1, Username: "admin", Email: "admin@example.com"},
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func (suite *StoreTestSuite) TestSaveAndGet() {
	s := suite.newSession()
	require.NoError(suite.T(), suite.db.Save(s))

	got, err := suite.db.Get(s.Token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), s.AccessToken, got.AccessToken)
	assert.Equal(suite.T(), s.RefreshToken, got.RefreshToken)
	assert.Equal(suite.T(), s.User, got.User)
}

func (suite *StoreTestSuite) TestGetUnknownToken() {
	_, err := suite.db.Get("no-such-token")
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *StoreTestSuite) TestGetExpiredSession() {
	s := suite.newSession()
	s.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(suite.T(), suite.db.Save(s))

	_, err := suite.db.Get(s.Token)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *StoreTestSuite) TestDelete() {
	s := suite.newSession()
	require.NoError(suite.T(), suite.db.Save(s))
	require.NoError(suite.T(), suite.db.Delete(s.Token))

	_, err := suite.db.Get(s.Token)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *StoreTestSuite) TestDeleteMissingTokenIsNoError() {
	assert.NoError(suite.T(), suite.db.Delete("never-existed"))
}

func (suite *StoreTestSuite) TestSaveReplacesExistingToken() {
	s := suite.newSession()
	require.NoError(suite.T(), suite.db.Save(s))

	s.AccessToken = "rotated"
	require.NoError(suite.T(), suite.db.Save(s))

	got, err := suite.db.Get(s.Token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "rotated", got.AccessToken)

	n, err := suite.db.count()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, n)
}

func (suite *StoreTestSuite) TestCleanExpired() {
	live := suite.newSession()
	require.NoError(suite.T(), suite.db.Save(live))

	stale := suite.newSession()
	stale.ExpiresAt = time.Now().Add(-time.Hour)
	require.NoError(suite.T(), suite.db.Save(stale))

	require.NoError(suite.T(), suite.db.CleanExpired())

	n, err := suite.db.count()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, n)

	_, err = suite.db.Get(live.Token)
	assert.NoError(suite.T(), err)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
