package models_test

import (
	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/directory/does/not/exist/database.db")
	assert.NotNil(suite.T(), err)

	// Reconnect so that TearDownTest has a database to close
	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	err := models.DB.First(&models.Account{}, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no account matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.First(&models.Account{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	// Reconnect so that TearDownTest has a database to close
	suite.SetupTest()
}
