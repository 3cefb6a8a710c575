package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const (
	catalogURL = "http://localhost:8002/api/v1"
	profileURL = "http://localhost:8001/api/v1"
	checkerURL = "http://localhost:8003/api/v1"

	smokeUserID = "smoke-test-user"

	// Fixtures loaded by cmd/seed.
	seededSpreadID     = "65f2a77f9d1e8b0001a3c111"
	seededOatDrinkCode = "7394376616037"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func dataField(body []byte) map[string]interface{} {
	var parsed map[string]interface{}
	json.Unmarshal(body, &parsed)
	if data, ok := parsed["data"].(map[string]interface{}); ok {
		return data
	}
	return nil
}

func main() {
	color.Cyan("🚀 Starting YoloEats Services Smoke Test\n")

	// 1. Profile: upsert the smoke user's profile
	color.Yellow("\n[PROFILE] 1. Upsert Smoke User Profile")
	profileReq := map[string]interface{}{
		"username":      "smoke_tester",
		"allergens":     []string{"peanuts", "milk"},
		"dietaryPrefs":  []string{"vegetarian"},
		"riskTolerance": "medium",
	}
	resp, body, err := sendRequest("PUT", profileURL+"/users/"+smokeUserID+"/profile", profileReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var profileResp map[string]interface{}
	json.Unmarshal(body, &profileResp)
	prettyPrint(profileResp)

	// 2. Profile: read it back
	color.Yellow("\n[PROFILE] 2. Get Smoke User Profile")
	resp, body, err = sendRequest("GET", profileURL+"/users/"+smokeUserID+"/profile", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var getProfileResp map[string]interface{}
	json.Unmarshal(body, &getProfileResp)
	prettyPrint(getProfileResp)

	// 3. Profile: allergen reference list
	color.Yellow("\n[PROFILE] 3. List Common Allergens")
	resp, body, err = sendRequest("GET", profileURL+"/allergens", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var allergensResp map[string]interface{}
	json.Unmarshal(body, &allergensResp)
	if list, ok := allergensResp["data"].([]interface{}); ok {
		fmt.Printf("Allergens in reference list: %d\n", len(list))
	} else {
		prettyPrint(allergensResp)
	}

	// 4. Catalog: create a throwaway product
	color.Yellow("\n[CATALOG] 4. Create Smoke Test Product")
	productReq := map[string]interface{}{
		"code":             "9900000000017",
		"product_name":     "Smoke Test Peanut Bar",
		"ingredients_text": "Roasted peanuts, sugar, salt",
		"brands_tags":      []string{"smoke-brand"},
		"categories_tags":  []string{"en:snacks"},
	}
	resp, body, err = sendRequest("POST", catalogURL+"/products", productReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var createResp map[string]interface{}
	json.Unmarshal(body, &createResp)
	prettyPrint(createResp)

	var productID string
	if data, ok := createResp["data"].(map[string]interface{}); ok {
		if id, ok := data["id"].(string); ok {
			productID = id
			fmt.Printf("Created Product ID: %s\n", productID)
		}
	}
	if productID == "" {
		color.Red("Aborting: no product id returned from create")
		os.Exit(1)
	}

	// 5. Catalog: fetch by id and by barcode
	color.Yellow("\n[CATALOG] 5. Get Product By ID and Barcode")
	resp, _, err = sendRequest("GET", catalogURL+"/products/"+productID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("By ID Status: %s", resp.Status)
	resp, body, err = sendRequest("GET", catalogURL+"/products/barcode/9900000000017", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("By Barcode Status: %s", resp.Status)
	if data := dataField(body); data != nil {
		fmt.Printf("Resolved: %v (%v)\n", data["product_name"], data["code"])
	}

	// 6. Catalog: filtered search
	color.Yellow("\n[CATALOG] 6. Search Products (name=peanut, diet=vegetarian)")
	resp, body, err = sendRequest("GET", catalogURL+"/products/search?name=peanut&diet=vegetarian&limit=5", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var searchResp map[string]interface{}
	json.Unmarshal(body, &searchResp)
	if list, ok := searchResp["data"].([]interface{}); ok {
		fmt.Printf("Search hits: %d\n", len(list))
	} else {
		prettyPrint(searchResp)
	}

	// 7. Checker: the peanut bar must come back unsafe for this user
	color.Yellow("\n[CHECKER] 7. Check Smoke Product (expect unsafe)")
	checkReq := map[string]interface{}{
		"productIdentifier": "9900000000017",
		"userId":            smokeUserID,
	}
	resp, body, err = sendRequest("POST", checkerURL+"/check", checkReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	if data := dataField(body); data != nil {
		fmt.Printf("Verdict: %v, conflicting allergens: %v\n", data["status"], data["conflictingAllergens"])
	}

	// 8. Checker: the seeded oat drink should be fine for this user
	color.Yellow("\n[CHECKER] 8. Check Seeded Oat Drink (expect safe)")
	checkReq = map[string]interface{}{
		"productIdentifier": seededOatDrinkCode,
		"userId":            smokeUserID,
	}
	resp, body, err = sendRequest("POST", checkerURL+"/check", checkReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	if data := dataField(body); data != nil {
		fmt.Printf("Verdict: %v\n", data["status"])
	}

	// 9. Catalog: recommendations for the seeded spread, personalized
	color.Yellow("\n[CATALOG] 9. Recommendations For Seeded Spread")
	resp, body, err = sendRequest("GET", catalogURL+"/products/"+seededSpreadID+"/recommendations?user_id="+smokeUserID+"&limit=5", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var recResp map[string]interface{}
	json.Unmarshal(body, &recResp)
	if list, ok := recResp["data"].([]interface{}); ok {
		fmt.Printf("Recommendations: %d\n", len(list))
		for _, item := range list {
			if p, ok := item.(map[string]interface{}); ok {
				fmt.Printf("  - %v (%v)\n", p["product_name"], p["code"])
			}
		}
	} else {
		prettyPrint(recResp)
	}

	// 10. Catalog: update then delete the throwaway product
	color.Yellow("\n[CATALOG] 10. Cleanup: Update And Delete Smoke Product")
	updateReq := map[string]interface{}{
		"nutrition_grade_fr": "d",
	}
	resp, _, err = sendRequest("PUT", catalogURL+"/products/"+productID, updateReq)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Update Status: %s", resp.Status)
	}
	resp, body, err = sendRequest("DELETE", catalogURL+"/products/"+productID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Delete Status: %s", resp.Status)
		var deleteResp map[string]interface{}
		json.Unmarshal(body, &deleteResp)
		prettyPrint(deleteResp)
	}

	color.Cyan("\n✅ Smoke Test Sequence Complete")
}
