package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yolda/logistics-api/internal/dto"
	"github.com/yolda/logistics-api/internal/models"
)

func createLoad(t *testing.T, env *testEnv, ownerID uint64, orgID *uint64) dto.LoadDTO {
	t.Helper()

	pickup := env.createAddress(t, "TR")
	dropoff := env.createAddress(t, "DE")

	body := map[string]interface{}{
		"name":               "Paletli makine",
		"quantity_value":     4.5,
		"quantity_unit":      "TON",
		"category":           "GENEL",
		"pickup_address_id":  pickup.ID,
		"dropoff_address_id": dropoff.ID,
		"pickup_day":         "2026-09-15",
		"intl":               true,
	}
	if orgID != nil {
		body["organization_id"] = *orgID
	}

	w := env.do(t, http.MethodPost, "/api/loads", body, env.accessToken(t, ownerID))
	require.Equal(t, http.StatusCreated, w.Code)

	var load dto.LoadDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &load))
	return load
}

func TestLoadHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "owner@x.com")

	load := createLoad(t, env, user.ID, nil)

	require.NotNil(t, load.OwnerUserID)
	require.Equal(t, user.ID, *load.OwnerUserID)
	require.Equal(t, "Paletli makine", load.Name)
	require.False(t, load.NameValidated)
	require.True(t, load.Intl)

	raw, err := json.Marshal(load.PickupDay)
	require.NoError(t, err)
	require.JSONEq(t, `"2026-09-15"`, string(raw))
}

func TestLoadHandler_Create_MissingPickupDay(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "owner@x.com")
	pickup := env.createAddress(t, "TR")
	dropoff := env.createAddress(t, "DE")

	w := env.do(t, http.MethodPost, "/api/loads", map[string]interface{}{
		"name":               "Paletli makine",
		"pickup_address_id":  pickup.ID,
		"dropoff_address_id": dropoff.ID,
	}, env.accessToken(t, user.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadHandler_Create_UnknownAddress(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "owner@x.com")
	pickup := env.createAddress(t, "TR")

	w := env.do(t, http.MethodPost, "/api/loads", map[string]interface{}{
		"name":               "Paletli makine",
		"pickup_address_id":  pickup.ID,
		"dropoff_address_id": 9999,
		"pickup_day":         "2026-09-15",
	}, env.accessToken(t, user.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadHandler_Get_VisibilityMasking(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	other := env.registerUser(t, "other@x.com")

	load := createLoad(t, env, owner.ID, nil)
	url := fmt.Sprintf("/api/loads/%d", load.ID)

	w := env.do(t, http.MethodGet, url, nil, env.accessToken(t, owner.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, url, nil, env.accessToken(t, other.ID))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPatch, url, map[string]string{"name": "Stolen"}, env.accessToken(t, other.ID))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoadHandler_Get_OrgAdminSees(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	admin := env.registerUser(t, "admin@x.com")
	org := createOrg(t, env, owner.ID, "Org X")

	_, err := env.membership.AssignRole(org.ID, admin.ID, models.RoleCorporateAdmin, models.StatusActive)
	require.NoError(t, err)

	load := createLoad(t, env, owner.ID, &org.ID)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/loads/%d", load.ID), nil, env.accessToken(t, admin.ID))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoadHandler_Update_PartialPatch(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	load := createLoad(t, env, owner.ID, nil)

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/loads/%d", load.ID), map[string]interface{}{
		"name":       "Soğuk zincir",
		"pickup_day": "2026-12-31",
	}, env.accessToken(t, owner.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.LoadDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Soğuk zincir", updated.Name)

	raw, err := json.Marshal(updated.PickupDay)
	require.NoError(t, err)
	require.JSONEq(t, `"2026-12-31"`, string(raw))

	// Untouched fields survive the patch.
	require.NotNil(t, updated.QuantityValue)
	require.Equal(t, 4.5, *updated.QuantityValue)
	require.True(t, updated.Intl)
}

func TestLoadHandler_Update_ClearsQuantity(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	load := createLoad(t, env, owner.ID, nil)

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/loads/%d", load.ID), map[string]interface{}{
		"quantity_value": nil,
		"quantity_unit":  nil,
	}, env.accessToken(t, owner.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.LoadDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Nil(t, updated.QuantityValue)
	require.Nil(t, updated.QuantityUnit)
}

func TestLoadHandler_Update_RejectsInvalidValues(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	load := createLoad(t, env, owner.ID, nil)
	url := fmt.Sprintf("/api/loads/%d", load.ID)
	bearer := env.accessToken(t, owner.ID)

	for _, body := range []map[string]interface{}{
		{"quantity_value": -5},
		{"quantity_unit": "BANANA"},
		{"category": "BANANA"},
		{"pickup_day": ""},
	} {
		w := env.do(t, http.MethodPatch, url, body, bearer)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}

	// The stored row is untouched by the rejected patches.
	w := env.do(t, http.MethodGet, url, nil, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	var stored dto.LoadDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.NotNil(t, stored.QuantityValue)
	require.Equal(t, 4.5, *stored.QuantityValue)
	require.NotNil(t, stored.QuantityUnit)
	require.Equal(t, models.UnitTon, *stored.QuantityUnit)

	raw, err := json.Marshal(stored.PickupDay)
	require.NoError(t, err)
	require.JSONEq(t, `"2026-09-15"`, string(raw))
}

func TestLoadHandler_Update_UnknownAddress(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	load := createLoad(t, env, owner.ID, nil)

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/api/loads/%d", load.ID), map[string]interface{}{
		"dropoff_address_id": 9999,
	}, env.accessToken(t, owner.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	load := createLoad(t, env, owner.ID, nil)
	url := fmt.Sprintf("/api/loads/%d", load.ID)

	w := env.do(t, http.MethodDelete, url, nil, env.accessToken(t, owner.ID))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, url, nil, env.accessToken(t, owner.ID))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoadHandler_List_OwnedOnly(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.registerUser(t, "owner@x.com")
	other := env.registerUser(t, "other@x.com")

	createLoad(t, env, owner.ID, nil)
	createLoad(t, env, owner.ID, nil)
	createLoad(t, env, other.ID, nil)

	w := env.do(t, http.MethodGet, "/api/loads", nil, env.accessToken(t, owner.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var loads []dto.LoadDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loads))
	require.Len(t, loads, 2)
	for _, l := range loads {
		require.NotNil(t, l.OwnerUserID)
		require.Equal(t, owner.ID, *l.OwnerUserID)
	}
}
