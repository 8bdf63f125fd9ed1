package utils

import (
    "testing"

    "golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
    hash, err := HashPassword("s3cret", bcrypt.MinCost)
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    if hash == "s3cret" {
        t.Fatal("hash equals the plaintext")
    }
    if !VerifyPassword(hash, "s3cret") {
        t.Error("correct password rejected")
    }
    if VerifyPassword(hash, "wrong") {
        t.Error("wrong password accepted")
    }
}

func TestHashPasswordClampsCost(t *testing.T) {
    // A zero cost must not degrade below bcrypt's minimum.
    hash, err := HashPassword("s3cret", 0)
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    cost, err := bcrypt.Cost([]byte(hash))
    if err != nil {
        t.Fatalf("Cost: %v", err)
    }
    if cost != bcrypt.DefaultCost {
        t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
    }
    if !VerifyPassword(hash, "s3cret") {
        t.Error("clamped-cost hash does not verify")
    }
}
