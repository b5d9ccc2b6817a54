package testutil

// WashSyncDescriptor is a complete descriptor for a Flutter application whose
// SDK bounds and release metadata all come from the framework.
const WashSyncDescriptor = `
plugins = [
  "com.android.application",
  "kotlin-android",
  "dev.flutter.flutter-gradle-plugin",
  "com.google.gms.google-services",
]

android {
  namespace   = "com.example.washsync_app"
  compile_sdk = flutter.compileSdkVersion
  ndk_version = flutter.ndkVersion

  compile_options {
    core_library_desugaring = true
    source_compatibility    = JavaVersion.VERSION_1_8
    target_compatibility    = JavaVersion.VERSION_1_8
  }

  kotlin_options {
    jvm_target = "1.8"
  }

  default_config {
    application_id = "com.example.washsync_app"
    min_sdk        = flutter.minSdkVersion
    target_sdk     = flutter.targetSdkVersion
    version_code   = flutter.versionCode
    version_name   = flutter.versionName
    multidex       = true
  }

  build_type "release" {
    signing_config = "debug"
  }
}

flutter {
  source = "../.."
}

dependency "coreLibraryDesugaring" "com.android.tools:desugar_jdk_libs:2.0.3" {}
dependency "implementation" "org.jetbrains.kotlin:kotlin-stdlib:1.9.10" {}
`

// WashSyncAmbient is the framework context matching WashSyncDescriptor.
const WashSyncAmbient = `
namespace = "flutter"

[values]
minSdkVersion     = 21
targetSdkVersion  = 34
compileSdkVersion = 34
ndkVersion        = "26.1.10909125"
versionCode       = 7
versionName       = "1.2.0"
`

// LiteralDescriptor declares every value literally and signs release builds
// with a dedicated upload key.
const LiteralDescriptor = `
plugins = ["com.android.application", "org.jetbrains.kotlin.android"]

android {
  namespace   = "org.acme.shop"
  compile_sdk = 34

  compile_options {
    source_compatibility = "17"
    target_compatibility = "17"
  }

  kotlin_options {
    jvm_target = "17"
  }

  default_config {
    application_id = "org.acme.shop"
    min_sdk        = 24
    target_sdk     = 34
    version_code   = 12
    version_name   = "3.4.1"
  }

  signing_config "upload" {
    store_file     = "upload.jks"
    store_password = "store-secret"
    key_alias      = "upload"
    key_password   = "key-secret"
  }

  build_type "release" {
    signing_config   = "upload"
    minify           = true
    shrink_resources = true
  }
}

dependency "implementation" "androidx.core:core-ktx:1.12.0" {}
`
