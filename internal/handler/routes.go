package handler

// APIV1Prefix is the base path every public route hangs off. Handlers and
// tests both reference it so the version lives in exactly one place.
const APIV1Prefix = "/api/v1"
